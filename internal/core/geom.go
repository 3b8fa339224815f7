// Package core holds the types shared by games and hosts: the screen
// buffer, input frames, runtime config, fixed-step timing, deterministic
// randomness and a little geometry. It has no UI dependencies.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Vec is a point or velocity in continuous world units.
type Vec struct {
	X, Y float64
}

// Polar returns the vector of length r pointing at angle a (radians,
// 0 = up, clockwise).
func Polar(a, r float64) Vec {
	return Vec{X: math.Sin(a) * r, Y: -math.Cos(a) * r}
}

func (v Vec) Add(o Vec) Vec         { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec         { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec   { return Vec{v.X * k, v.Y * k} }
func (v Vec) LenSq() float64        { return v.X*v.X + v.Y*v.Y }
func (v Vec) Len() float64          { return math.Hypot(v.X, v.Y) }
func (v Vec) Wrap(w, h float64) Vec { return Vec{WrapF(v.X, w), WrapF(v.Y, h)} }

// WrapF folds val into [0, size). Non-positive sizes leave val alone.
func WrapF(val, size float64) float64 {
	if size <= 0 {
		return val
	}
	val = math.Mod(val, size)
	if val < 0 {
		val += size
	}
	// math.Mod of a tiny negative can round up to size
	if val >= size {
		return 0
	}
	return val
}

// WrapDelta is the shortest signed step from a to b on a ring of length
// size. Non-positive sizes give the plain difference.
func WrapDelta(a, b, size float64) float64 {
	d := b - a
	if size <= 0 {
		return d
	}
	switch {
	case d > size/2:
		d -= size
	case d < -size/2:
		d += size
	}
	return d
}

// CirclesOverlap reports whether two circles intersect on a w x h torus.
// Zero sizes mean a flat plane.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64, w, h float64) bool {
	d := Vec{WrapDelta(a.X, b.X, w), WrapDelta(a.Y, b.Y, h)}
	r := ra + rb
	return d.LenSq() < r*r
}
