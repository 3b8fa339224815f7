package pacman

import (
	"slices"
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// testGrid is a bare wall grid: '#' blocks, anything else is open.
type testGrid []string

func (g testGrid) Width() int  { return len(g[0]) }
func (g testGrid) Height() int { return len(g) }
func (g testGrid) Blocked(col, row int) bool {
	if row < 0 || row >= len(g) {
		return true
	}
	w := g.Width()
	return g[row][((col%w)+w)%w] == '#'
}

var openRoom = testGrid{
	"#####",
	"#...#",
	"#...#",
	"#...#",
	"#####",
}

func TestValidDirections(t *testing.T) {
	deadEnd := testGrid{
		"#####",
		"#..##",
		"#####",
	}

	tests := []struct {
		name    string
		grid    testGrid
		at      Point
		current Direction
		want    []Direction
	}{
		{"center no reverse", openRoom, Point{2, 2}, DirRight, []Direction{DirUp, DirDown, DirRight}},
		{"center at rest", openRoom, Point{2, 2}, DirNone, []Direction{DirUp, DirDown, DirLeft, DirRight}},
		{"corner", openRoom, Point{1, 1}, DirLeft, []Direction{DirDown}},
		{"dead end reverses", deadEnd, Point{2, 1}, DirRight, []Direction{DirLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidDirections(tt.grid, tt.at, tt.current)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ValidDirections() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPursue(t *testing.T) {
	all := []Direction{DirUp, DirDown, DirLeft, DirRight}

	tests := []struct {
		name   string
		target Point
		valid  []Direction
		want   Direction
	}{
		{"nearest wins", Point{3, 2}, all, DirRight},
		{"up beats left on tie", Point{1, 1}, all, DirUp},
		{"down beats right on tie", Point{3, 3}, all, DirDown},
		{"only valid directions count", Point{3, 2}, []Direction{DirUp, DirLeft}, DirUp},
		{"no valid directions", Point{3, 2}, nil, DirNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pursue(openRoom, Point{2, 2}, tt.target, tt.valid); got != tt.want {
				t.Errorf("Pursue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPursueAcrossWrap(t *testing.T) {
	tunnel := testGrid{
		"#####",
		".....",
		"#####",
	}
	// Column 0 wraps to column 4, which sits on the target
	got := Pursue(tunnel, Point{0, 1}, Point{4, 1}, []Direction{DirLeft, DirRight})
	if got != DirLeft {
		t.Errorf("Pursue() = %v, want left through the wrap", got)
	}
}

func TestWander(t *testing.T) {
	rng := core.NewRNG(7)
	valid := []Direction{DirUp, DirLeft}
	seen := map[Direction]bool{}
	for range 200 {
		d := Wander(rng, valid)
		if !slices.Contains(valid, d) {
			t.Fatalf("Wander() = %v, not in %v", d, valid)
		}
		seen[d] = true
	}
	if len(seen) != 2 {
		t.Errorf("Wander should reach every valid direction, saw %v", seen)
	}
	if Wander(rng, nil) != DirNone {
		t.Error("Wander with no options should return DirNone")
	}
}

func TestDirectionReverse(t *testing.T) {
	pairs := [][2]Direction{{DirUp, DirDown}, {DirLeft, DirRight}, {DirNone, DirNone}}
	for _, p := range pairs {
		if p[0].Reverse() != p[1] || p[1].Reverse() != p[0] {
			t.Errorf("Reverse(%v) mismatch", p[0])
		}
	}
}
