package core

import (
	"testing"
	"time"
)

func TestFrameClockFirstFrame(t *testing.T) {
	c := NewFrameClock(60)
	if steps := c.Advance(time.Unix(100, 0)); steps != 1 {
		t.Errorf("first Advance() = %d, expected 1", steps)
	}
}

func TestFrameClockSteadyRate(t *testing.T) {
	c := NewFrameClock(50) // 20ms per step
	start := time.Unix(100, 0)
	c.Advance(start)

	total := 0
	for i := 1; i <= 10; i++ {
		total += c.Advance(start.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	if total != 10 {
		t.Errorf("10 frames at the tick rate produced %d steps, expected 10", total)
	}
}

func TestFrameClockAccumulatesShortFrames(t *testing.T) {
	c := NewFrameClock(50)
	start := time.Unix(100, 0)
	c.Advance(start)

	if steps := c.Advance(start.Add(10 * time.Millisecond)); steps != 0 {
		t.Errorf("half a step produced %d steps, expected 0", steps)
	}
	if steps := c.Advance(start.Add(20 * time.Millisecond)); steps != 1 {
		t.Errorf("second half produced %d steps, expected 1", steps)
	}
}

func TestFrameClockClampsStall(t *testing.T) {
	c := NewFrameClock(50)
	start := time.Unix(100, 0)
	c.Advance(start)

	steps := c.Advance(start.Add(10 * time.Second))
	if steps != maxCatchUpSteps {
		t.Errorf("stalled frame produced %d steps, expected %d", steps, maxCatchUpSteps)
	}
	// The clamped remainder carries no extra steps
	if steps := c.Advance(start.Add(10*time.Second + 10*time.Millisecond)); steps != 0 {
		t.Errorf("half a step after the stall produced %d steps, expected 0", steps)
	}
}

func TestFrameClockReset(t *testing.T) {
	c := NewFrameClock(60)
	start := time.Unix(100, 0)
	c.Advance(start)
	c.Reset()

	if steps := c.Advance(start.Add(time.Hour)); steps != 1 {
		t.Errorf("Advance after Reset = %d, expected 1", steps)
	}
}
