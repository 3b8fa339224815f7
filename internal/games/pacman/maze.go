package pacman

import (
	"fmt"
	"strings"
)

// Cell is a maze cell code.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
	CellPower
	CellDoor // Ghost pen gate, open only to ghosts leaving the pen
)

// Point is a cell coordinate.
type Point struct {
	Col, Row int
}

// DefaultLayout is the standard maze. Legend:
//
//	#  wall          .  pellet       o  power pellet
//	-  pen door      P  player spawn G  ghost spawn
//	H  ghost home    (space) empty
//
// Rows whose outer columns are open are tunnels.
var DefaultLayout = []string{
	"###################",
	"#........#........#",
	"#o##.###.#.###.##o#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.### # ###.####",
	"####.#   H   #.####",
	"####.# ##-## #.####",
	"    .  #G G#  .    ",
	"####.# #G G# #.####",
	"####.# ##### #.####",
	"####.#       #.####",
	"####.# ##### #.####",
	"#........#........#",
	"#.##.###.#.###.##.#",
	"#o.#.....P.....#.o#",
	"##.#.#.#####.#.#.##",
	"#....#...#...#....#",
	"#.######.#.######.#",
	"#.................#",
	"###################",
}

// Maze is the cell grid for one level. Pellet cells are cleared to empty
// as they are eaten; a new level parses the layout again.
type Maze struct {
	width   int
	height  int
	cells   []Cell
	pellets int

	PlayerSpawn Point
	GhostSpawns []Point
	Home        Point
}

// ParseMaze builds a maze from an ASCII layout.
func ParseMaze(layout []string) (*Maze, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("pacman: empty layout")
	}
	w := len(layout[0])
	m := &Maze{
		width:  w,
		height: len(layout),
		cells:  make([]Cell, w*len(layout)),
	}

	havePlayer, haveHome := false, false
	for row, line := range layout {
		if len(line) != w {
			return nil, fmt.Errorf("pacman: layout row %d has width %d, want %d", row, len(line), w)
		}
		for col, ch := range line {
			c := CellEmpty
			switch ch {
			case '#':
				c = CellWall
			case '.':
				c = CellPellet
				m.pellets++
			case 'o':
				c = CellPower
				m.pellets++
			case '-':
				c = CellDoor
			case 'P':
				m.PlayerSpawn = Point{col, row}
				havePlayer = true
			case 'G':
				m.GhostSpawns = append(m.GhostSpawns, Point{col, row})
			case 'H':
				m.Home = Point{col, row}
				haveHome = true
			case ' ':
			default:
				return nil, fmt.Errorf("pacman: unknown cell %q at %d,%d", ch, col, row)
			}
			m.cells[row*w+col] = c
		}
	}

	if !havePlayer {
		return nil, fmt.Errorf("pacman: layout has no player spawn")
	}
	if !haveHome {
		return nil, fmt.Errorf("pacman: layout has no ghost home")
	}
	return m, nil
}

// MustParseMaze is ParseMaze for built-in layouts.
func MustParseMaze(layout []string) *Maze {
	m, err := ParseMaze(layout)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the maze width in cells.
func (m *Maze) Width() int { return m.width }

// Height returns the maze height in cells.
func (m *Maze) Height() int { return m.height }

// PelletsLeft returns the number of uneaten pellets, power pellets included.
func (m *Maze) PelletsLeft() int { return m.pellets }

// wrapCol maps any column onto the grid; the maze is horizontally periodic.
func (m *Maze) wrapCol(col int) int {
	col %= m.width
	if col < 0 {
		col += m.width
	}
	return col
}

// At returns the cell code. Rows outside the grid read as wall.
func (m *Maze) At(col, row int) Cell {
	if row < 0 || row >= m.height {
		return CellWall
	}
	return m.cells[row*m.width+m.wrapCol(col)]
}

// IsWall reports whether a cell is solid wall.
func (m *Maze) IsWall(col, row int) bool {
	return m.At(col, row) == CellWall
}

// Blocked implements Grid for the player: walls and the pen door block.
func (m *Maze) Blocked(col, row int) bool {
	c := m.At(col, row)
	return c == CellWall || c == CellDoor
}

// Eat clears a pellet at the cell and reports what was there.
func (m *Maze) Eat(col, row int) Cell {
	c := m.At(col, row)
	if c != CellPellet && c != CellPower {
		return CellEmpty
	}
	m.cells[row*m.width+m.wrapCol(col)] = CellEmpty
	m.pellets--
	return c
}

// String renders the current grid back to layout form (without spawns).
func (m *Maze) String() string {
	var b strings.Builder
	for row := range m.height {
		for col := range m.width {
			switch m.At(col, row) {
			case CellWall:
				b.WriteByte('#')
			case CellPellet:
				b.WriteByte('.')
			case CellPower:
				b.WriteByte('o')
			case CellDoor:
				b.WriteByte('-')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Grid is the walkability view used by movement and pursuit.
type Grid interface {
	Width() int
	Height() int
	Blocked(col, row int) bool
}

// penGrid lets ghosts leaving the pen pass through the door.
type penGrid struct {
	*Maze
}

func (p penGrid) Blocked(col, row int) bool {
	return p.Maze.IsWall(col, row)
}
