package pacman

import (
	"math"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// eps keeps a bounding box that ends exactly on a grid line out of the next cell.
const eps = 1e-6

// worldWidth is the horizontal wrap period in pixels.
func worldWidth(g Grid) float64 {
	return float64(g.Width() * TileSize)
}

// gridLine returns the nearest grid line to a pixel coordinate.
func gridLine(v float64) float64 {
	return math.Round(v/TileSize) * TileSize
}

// overlapsWall tests the four corners of a bounding box at (x, y) against
// the grid. Columns wrap; rows outside the grid are blocked.
func overlapsWall(g Grid, x, y float64) bool {
	c0 := int(math.Floor(x / TileSize))
	c1 := int(math.Floor((x + TileSize - eps) / TileSize))
	r0 := int(math.Floor(y / TileSize))
	r1 := int(math.Floor((y + TileSize - eps) / TileSize))
	return g.Blocked(c0, r0) || g.Blocked(c1, r0) || g.Blocked(c0, r1) || g.Blocked(c1, r1)
}

// aligned reports whether the actor is within half a step of a cell
// position, returning that cell's snapped pixel position.
func aligned(a *Actor, g Grid) (x, y float64, ok bool) {
	window := a.Speed / 2
	gx, gy := gridLine(a.X), gridLine(a.Y)
	if math.Abs(a.X-gx) > window || math.Abs(a.Y-gy) > window {
		return 0, 0, false
	}
	return core.WrapF(gx, worldWidth(g)), gy, true
}

// cellOf maps a snapped pixel position to its cell.
func cellOf(g Grid, x, y float64) Point {
	col := int(math.Round(x / TileSize))
	col = ((col % g.Width()) + g.Width()) % g.Width()
	return Point{col, int(math.Round(y / TileSize))}
}

// tryTurn applies the buffered direction if the rules allow it. Reversal is
// allowed anywhere on the current axis; any other change needs the actor to
// be aligned with a cell whose neighbor in the new direction is open, and
// snaps it exactly onto that cell.
func tryTurn(a *Actor, g Grid) bool {
	if a.Next == DirNone || a.Next == a.Dir {
		return false
	}
	if a.Dir != DirNone && a.Next == a.Dir.Reverse() {
		a.Dir = a.Next
		return true
	}

	x, y, ok := aligned(a, g)
	if !ok {
		return false
	}
	cell := cellOf(g, x, y)
	dx, dy := a.Next.Delta()
	if g.Blocked(cell.Col+dx, cell.Row+dy) {
		return false
	}
	a.X, a.Y = x, y
	a.Dir = a.Next
	return true
}

// Move advances an actor one tick: apply the buffered turn, step by Speed
// along Dir, wrap horizontally, and reject any step whose bounding box would
// overlap a blocked cell. A rejected step snaps the actor onto the last free
// grid line along its heading and stops it.
//
// Collision is a point-in-time box test, not a sweep, so a speed above
// TileSize can skip a one-cell wall.
func Move(a *Actor, g Grid) {
	if a.Speed <= 0 {
		return
	}
	tryTurn(a, g)
	if a.Dir == DirNone {
		return
	}

	dx, dy := a.Dir.Delta()
	w := worldWidth(g)
	nx := core.WrapF(a.X+float64(dx)*a.Speed, w)
	ny := a.Y + float64(dy)*a.Speed

	if !overlapsWall(g, nx, ny) {
		a.X, a.Y = nx, ny
		return
	}

	switch a.Dir {
	case DirRight:
		a.X = core.WrapF(math.Floor(nx/TileSize)*TileSize, w)
	case DirLeft:
		a.X = core.WrapF(math.Ceil(nx/TileSize)*TileSize, w)
	case DirDown:
		a.Y = math.Floor(ny/TileSize) * TileSize
	case DirUp:
		a.Y = math.Ceil(ny/TileSize) * TileSize
	}
	a.Dir = DirNone
}
