package asteroids

import "math"

// Snapshot contains the game state for replay comparison and tests.
// Positions and velocities are stored in thousandths of a unit.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	Wave  int
	State string

	ShipX, ShipY   int
	ShipVX, ShipVY int
	Heading        int
	ShipAlive      bool
	Invulnerable   int

	Bullets int
	// Each rock is 3 ints: X, Y, Size
	RockData []int

	PendingEvents int
	RNGState      uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	rocks := make([]int, 0, len(g.rocks)*3)
	for _, r := range g.rocks {
		rocks = append(rocks, milli(r.Pos.X), milli(r.Pos.Y), int(r.Size))
	}
	return Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		Lives:         g.lives,
		Wave:          g.wave,
		State:         g.state,
		ShipX:         milli(g.ship.Pos.X),
		ShipY:         milli(g.ship.Pos.Y),
		ShipVX:        milli(g.ship.Vel.X),
		ShipVY:        milli(g.ship.Vel.Y),
		Heading:       g.ship.Heading,
		ShipAlive:     g.ship.Alive,
		Invulnerable:  g.ship.Invulnerable,
		Bullets:       len(g.bullets),
		RockData:      rocks,
		PendingEvents: g.events.Len(),
		RNGState:      g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	alive := 0
	if snap.ShipAlive {
		alive = 1
	}
	for _, v := range []int{
		snap.Score, snap.Lives, snap.Wave, snap.ShipX, snap.ShipY, snap.ShipVX, snap.ShipVY,
		snap.Heading, alive, snap.Invulnerable, snap.Bullets, snap.PendingEvents,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.RockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h*31 + snap.RNGState
}
