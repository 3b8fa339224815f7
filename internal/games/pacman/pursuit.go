package pacman

import "github.com/vovakirdan/arcade-classics/internal/core"

// neighbor returns the cell one step from p, wrapping columns.
func neighbor(g Grid, p Point, d Direction) Point {
	dx, dy := d.Delta()
	w := g.Width()
	return Point{((p.Col+dx)%w + w) % w, p.Row + dy}
}

// ValidDirections lists the open directions out of a cell in tie-break
// order (up, down, left, right), excluding the reverse of current. The
// reverse is returned alone when it is the only way out.
func ValidDirections(g Grid, at Point, current Direction) []Direction {
	back := current.Reverse()
	valid := make([]Direction, 0, 4)
	backOpen := false
	for _, d := range directionOrder {
		n := neighbor(g, at, d)
		if g.Blocked(n.Col, n.Row) {
			continue
		}
		if d == back {
			backOpen = true
			continue
		}
		valid = append(valid, d)
	}
	if len(valid) == 0 && backOpen {
		valid = append(valid, back)
	}
	return valid
}

// Pursue picks the direction whose neighbor cell is nearest to target by
// squared distance. Earlier entries win ties, so callers pass directions in
// up, down, left, right order. It looks one cell ahead only.
func Pursue(g Grid, from, target Point, valid []Direction) Direction {
	best := DirNone
	bestDist := -1
	for _, d := range valid {
		n := neighbor(g, from, d)
		dc, dr := n.Col-target.Col, n.Row-target.Row
		dist := dc*dc + dr*dr
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// Wander picks a uniformly random direction from valid.
func Wander(rng *core.RNG, valid []Direction) Direction {
	if len(valid) == 0 {
		return DirNone
	}
	return valid[rng.Intn(len(valid))]
}
