package klax

// Snapshot contains the game state for replay comparison and tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	Drops     int
	Wave      int
	Klaxes    int
	State     string
	Paddle    int
	Chain     int
	Cascading bool

	Stack []int
	Bin   []int
	// Each belt tile is 3 ints: Lane, Row, Color
	Belt []int

	PendingEvents int
	RNGState      uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	stack := make([]int, len(g.stack))
	for i, c := range g.stack {
		stack[i] = int(c)
	}
	bin := make([]int, 0, g.bin.Columns()*g.bin.Rows())
	for row := range g.bin.Rows() {
		for col := range g.bin.Columns() {
			bin = append(bin, int(g.bin.At(col, row)))
		}
	}
	belt := make([]int, 0, len(g.belt)*3)
	for _, t := range g.belt {
		belt = append(belt, t.Lane, t.Row, int(t.Color))
	}
	return Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		Drops:         g.drops,
		Wave:          g.wave,
		Klaxes:        g.total,
		State:         g.state,
		Paddle:        g.paddle,
		Chain:         g.chain,
		Cascading:     g.cascading,
		Stack:         stack,
		Bin:           bin,
		Belt:          belt,
		PendingEvents: g.events.Len(),
		RNGState:      g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	cascading := 0
	if snap.Cascading {
		cascading = 1
	}
	for _, v := range []int{
		snap.Score, snap.Drops, snap.Wave, snap.Klaxes, snap.Paddle, snap.Chain, cascading, snap.PendingEvents,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, list := range [][]int{snap.Stack, snap.Bin, snap.Belt} {
		h = h*31 + uint64(len(list)) //#nosec G115 -- hash computation
		for _, v := range list {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h*31 + snap.RNGState
}
