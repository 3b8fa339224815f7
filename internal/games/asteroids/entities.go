package asteroids

import (
	"math"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Size is an asteroid size class. Each hit splits a rock into two of the
// next smaller size; small rocks are destroyed outright.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	}
	return "small"
}

// speedFactor scales the base rock speed; smaller rocks fly faster.
func (s Size) speedFactor() float64 {
	switch s {
	case SizeLarge:
		return 1.0
	case SizeMedium:
		return 1.5
	}
	return 2.0
}

// Ship is the player craft. Heading 0 points up and headings increase
// clockwise.
type Ship struct {
	Pos          core.Vec
	Vel          core.Vec
	Heading      int
	Alive        bool
	Invulnerable int  // Ticks of spawn protection left
	Thrusting    bool // Thrust applied this tick
}

// Bullet is a shot with a limited lifetime.
type Bullet struct {
	Pos  core.Vec
	Vel  core.Vec
	Life int // Ticks left
}

// Rock is a drifting asteroid.
type Rock struct {
	Pos  core.Vec
	Vel  core.Vec
	Size Size
}

// headingVec returns the unit vector for heading h out of n. Y grows downward.
func headingVec(h, n int) core.Vec {
	return core.Polar(2*math.Pi*float64(h)/float64(n), 1)
}

// rotate turns v by angle radians.
func rotate(v core.Vec, angle float64) core.Vec {
	s, c := math.Sin(angle), math.Cos(angle)
	return core.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
