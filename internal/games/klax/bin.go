package klax

// Color is a tile colour. The zero value is an empty cell.
type Color uint8

const Empty Color = 0

// Point is a bin cell. Row 0 is the top of the bin.
type Point struct {
	Col, Row int
}

// Bin is the grid tiles are dropped into. Tiles always rest on the bottom
// or on another tile.
type Bin struct {
	cols, rows int
	cells      []Color
}

// NewBin creates an empty bin.
func NewBin(cols, rows int) *Bin {
	return &Bin{cols: cols, rows: rows, cells: make([]Color, cols*rows)}
}

// Columns returns the bin width.
func (b *Bin) Columns() int { return b.cols }

// Rows returns the bin height.
func (b *Bin) Rows() int { return b.rows }

func (b *Bin) inside(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// At returns the tile at a cell, or Empty outside the bin.
func (b *Bin) At(col, row int) Color {
	if !b.inside(col, row) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

// Set writes a cell directly. Used to build positions in tests and by Collapse.
func (b *Bin) Set(col, row int, c Color) {
	if b.inside(col, row) {
		b.cells[row*b.cols+col] = c
	}
}

// Height returns how many tiles are stacked in a column.
func (b *Bin) Height(col int) int {
	n := 0
	for row := b.rows - 1; row >= 0; row-- {
		if b.At(col, row) == Empty {
			break
		}
		n++
	}
	return n
}

// Drop lands a tile on top of a column and returns the row it came to rest
// in. It reports false and changes nothing when the column is full.
func (b *Bin) Drop(col int, c Color) (int, bool) {
	if col < 0 || col >= b.cols {
		return 0, false
	}
	row := b.rows - 1 - b.Height(col)
	if row < 0 {
		return 0, false
	}
	b.Set(col, row, c)
	return row, true
}

// Clear empties the given cells.
func (b *Bin) Clear(cells []Point) {
	for _, p := range cells {
		b.Set(p.Col, p.Row, Empty)
	}
}

// Collapse lets every tile fall onto the one below it and reports whether
// anything moved.
func (b *Bin) Collapse() bool {
	moved := false
	for col := range b.cols {
		dst := b.rows - 1
		for row := b.rows - 1; row >= 0; row-- {
			c := b.At(col, row)
			if c == Empty {
				continue
			}
			if row != dst {
				b.Set(col, dst, c)
				b.Set(col, row, Empty)
				moved = true
			}
			dst--
		}
	}
	return moved
}

