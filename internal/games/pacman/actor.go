package pacman

import "math"

// TileSize is the edge of a maze cell in pixels.
const TileSize = 8

// Direction is a grid-aligned heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// directionOrder is the tie-break order for pursuit.
var directionOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Reverse returns the opposite direction. DirNone has no reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Actor is anything that moves through the maze. X and Y are the top-left
// pixel of its TileSize bounding box.
type Actor struct {
	X, Y  float64
	Dir   Direction
	Next  Direction // Buffered turn, applied at the next aligned moment
	Speed float64   // Pixels per tick
}

// actorAt places an actor on a cell, at rest.
func actorAt(p Point) Actor {
	return Actor{X: float64(p.Col * TileSize), Y: float64(p.Row * TileSize)}
}

// Center returns the pixel center of the bounding box.
func (a *Actor) Center() (float64, float64) {
	return a.X + TileSize/2, a.Y + TileSize/2
}

// Cell returns the cell containing the actor's center.
func (a *Actor) Cell(g Grid) Point {
	cx, cy := a.Center()
	col := int(math.Floor(cx / TileSize))
	if w := g.Width(); w > 0 {
		col = ((col % w) + w) % w
	}
	return Point{col, int(math.Floor(cy / TileSize))}
}

// Mode is the ghost behavior state.
type Mode int

const (
	ModeChase Mode = iota
	ModeFrightened
	ModeEaten
)

func (m Mode) String() string {
	switch m {
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	}
	return "chase"
}

// Ghost is a hazard actor with its mode and pen status.
type Ghost struct {
	Actor
	Mode    Mode
	Penned  bool  // Waiting in the pen for release
	Leaving bool  // Released, heading for the home cell through the door
	decided Point // Last cell where a direction was chosen
	spawn   Point
}

func newGhost(spawn Point) Ghost {
	return Ghost{
		Actor:   actorAt(spawn),
		Mode:    ModeChase,
		Penned:  true,
		decided: Point{-1, -1},
		spawn:   spawn,
	}
}

// grid returns the walkability view for this ghost.
func (gh *Ghost) grid(m *Maze) Grid {
	if gh.Leaving || gh.Penned {
		return penGrid{m}
	}
	return m
}

// turnAround reverses a moving ghost and lets it decide again at the next cell.
func (gh *Ghost) turnAround() {
	if gh.Dir == DirNone {
		return
	}
	gh.Dir = gh.Dir.Reverse()
	gh.Next = gh.Dir
	gh.decided = Point{-1, -1}
}
