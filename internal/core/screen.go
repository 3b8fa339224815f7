package core

import (
	"strings"
	"unicode/utf8"
)

// Screen is a fixed-size grid of colored runes. Games draw into it and the
// host decides how to display it. Writes outside the grid are dropped.
type Screen struct {
	w, h  int
	cells []Cell // row-major
}

// NewScreen returns a blank w x h screen.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.Resize(w, h)
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// Resize changes the dimensions, keeping the overlapping top-left region.
func (s *Screen) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == s.w && h == s.h && s.cells != nil {
		return
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = blank
	}
	for y := range min(h, s.h) {
		copy(cells[y*w:y*w+min(w, s.w)], s.cells[y*s.w:])
	}
	s.w, s.h, s.cells = w, h, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set writes r in the default color.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the grid.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.w+x]
}

// DrawText writes text left to right from (x, y), one cell per rune.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColor(x, y, r, c)
		x++
	}
}

func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColor(y, text, ColorDefault)
}

func (s *Screen) DrawTextCenteredColor(y int, text string, c Color) {
	s.DrawTextColor((s.w-utf8.RuneCountInString(text))/2, y, text, c)
}

// DrawBox outlines r with light box-drawing runes.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawOverlay shows a framed two-line message in the middle of the screen.
// The title uses c and the detail line the default color.
func (s *Screen) DrawOverlay(title, detail string, c Color) {
	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(detail)) + 4
	box := NewRect((s.w-w)/2, (s.h-5)/2, w, 5)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			s.Set(x, y, ' ')
		}
	}
	s.DrawBox(box)
	s.DrawTextCenteredColor(box.Y+1, title, c)
	s.DrawTextCentered(box.Y+3, detail)
}

// Row returns line y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	runes := make([]rune, s.w)
	for x, c := range s.cells[y*s.w : (y+1)*s.w] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// String returns all rows joined by newlines, without colors.
func (s *Screen) String() string {
	var b strings.Builder
	b.Grow(s.h * (s.w + 1))
	for y := range s.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.Row(y))
	}
	return b.String()
}
