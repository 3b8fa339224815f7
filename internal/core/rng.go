package core

// RNG is a deterministic pseudo-random number generator whose whole state is
// a single word, so games can put it in snapshots and replay from a seed.
// It is a 64-bit LCG; only the high bits are handed out.
type RNG struct {
	state uint64
}

// NewRNG creates an RNG for the given seed. Seed 0 is remapped to 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next advances the generator and returns 31 random bits.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state >> 33
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<31)
}

// State returns the raw generator state.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores a state previously returned by State.
func (r *RNG) SetState(s uint64) {
	r.state = s
}
