package core

import "time"

// maxCatchUpSteps bounds how many fixed steps one frame may run after a stall.
const maxCatchUpSteps = 4

// FrameClock turns frame callback timestamps into fixed simulation steps.
// The delta between consecutive timestamps is clamped so a suspended
// terminal or a slow client never triggers a burst of catch-up steps.
type FrameClock struct {
	step     time.Duration
	maxDelta time.Duration
	last     time.Time
	acc      time.Duration
}

// NewFrameClock creates a clock for the given tick rate (ticks per second).
// Non-positive rates fall back to 60.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	step := time.Second / time.Duration(tickRate)
	return &FrameClock{
		step:     step,
		maxDelta: step * maxCatchUpSteps,
	}
}

// Advance records a frame timestamp and returns how many fixed steps the
// caller should simulate. The first frame always runs exactly one step.
func (c *FrameClock) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 1
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.acc += dt

	steps := int(c.acc / c.step)
	c.acc -= time.Duration(steps) * c.step
	return steps
}

// Reset forgets the previous timestamp, e.g. after a pause or restart.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
	c.acc = 0
}
