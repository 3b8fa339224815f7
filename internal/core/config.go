package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a host hands a game on Reset.
type RuntimeConfig struct {
	ScreenW, ScreenH int
	TickRate         int   // steps per second
	Seed             int64 // hosts replace 0 with a time-based seed
}

// DefaultConfig is an 80x24 terminal at DefaultTickRate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// WithSize returns a copy of c resized to w x h.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	c.ScreenW, c.ScreenH = w, h
	return c
}

// GameState is the part of a game's state hosts care about.
type GameState struct {
	Score    int
	Lives    int // 0 for games without lives
	Level    int // 1-based level or wave
	GameOver bool
	Paused   bool
}

// StepResult is returned by every simulation step.
type StepResult struct {
	State GameState
}
