package pacman

import "math"

// Snapshot contains the game state for replay comparison and tests.
// Positions are stored in thousandths of a pixel.
type Snapshot struct {
	Tick           uint64
	Score          int
	Lives          int
	Level          int
	State          string
	PelletsLeft    int
	FrightenedLeft int
	Combo          int

	PlayerX   int
	PlayerY   int
	PlayerDir int

	// Each ghost is 5 ints: X, Y, Dir, Mode, Flags (1=penned, 2=leaving)
	GhostData []int

	PendingEvents int
	RNGState      uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ghostData := make([]int, 0, len(g.ghosts)*5)
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		flags := 0
		if gh.Penned {
			flags |= 1
		}
		if gh.Leaving {
			flags |= 2
		}
		ghostData = append(ghostData, milli(gh.X), milli(gh.Y), int(gh.Dir), int(gh.Mode), flags)
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		Lives:          g.lives,
		Level:          g.level,
		State:          g.state,
		PelletsLeft:    g.maze.PelletsLeft(),
		FrightenedLeft: g.frightenedLeft,
		Combo:          g.combo,
		PlayerX:        milli(g.player.X),
		PlayerY:        milli(g.player.Y),
		PlayerDir:      int(g.player.Dir),
		GhostData:      ghostData,
		PendingEvents:  g.events.Len(),
		RNGState:       g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Score, snap.Lives, snap.Level, snap.PelletsLeft, snap.FrightenedLeft,
		snap.Combo, snap.PlayerX, snap.PlayerY, snap.PlayerDir, snap.PendingEvents,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.GhostData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h*31 + snap.RNGState
}
