package klax

// Orientation is the direction of a klax.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
	Diagonal
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Diagonal:
		return "diagonal"
	}
	return "vertical"
}

// MinRun is the shortest line of one colour that counts as a klax.
const MinRun = 3

// Klax is a maximal straight run of at least MinRun same-coloured tiles.
type Klax struct {
	Color       Color
	Orientation Orientation
	Cells       []Point
}

var scanDirs = []struct {
	dc, dr int
	o      Orientation
}{
	{0, 1, Vertical},
	{1, 0, Horizontal},
	{1, 1, Diagonal},
	{-1, 1, Diagonal},
}

// FindKlaxes returns every klax in the bin. A tile can belong to several
// klaxes, for example where a row and a column cross. Results are ordered
// by scan direction, then row, then column.
func FindKlaxes(b *Bin) []Klax {
	var found []Klax
	for _, d := range scanDirs {
		for row := range b.rows {
			for col := range b.cols {
				c := b.At(col, row)
				if c == Empty {
					continue
				}
				// Only start counting at the first tile of a run
				if b.At(col-d.dc, row-d.dr) == c {
					continue
				}
				var cells []Point
				for i := 0; b.At(col+i*d.dc, row+i*d.dr) == c; i++ {
					cells = append(cells, Point{col + i*d.dc, row + i*d.dr})
				}
				if len(cells) >= MinRun {
					found = append(found, Klax{Color: c, Orientation: d.o, Cells: cells})
				}
			}
		}
	}
	return found
}

// Cells returns the distinct cells covered by a set of klaxes.
func Cells(klaxes []Klax) []Point {
	seen := make(map[Point]bool)
	var cells []Point
	for _, k := range klaxes {
		for _, p := range k.Cells {
			if !seen[p] {
				seen[p] = true
				cells = append(cells, p)
			}
		}
	}
	return cells
}
