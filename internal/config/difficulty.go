package config

// Progression types understood by DifficultyManager.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyManager ramps game parameters from the configured starting
// level towards full difficulty as score or elapsed ticks grow.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager wraps a difficulty block. The starting level is
// clamped into [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = min(max(cfg.InitialLevel, 0), 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	t := d.cfg.Progression.Type
	return t == ProgressionScore || t == ProgressionTime
}

// progress is how far along the ramp the run is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	measure := score
	if d.cfg.Progression.Type == ProgressionTime {
		measure = ticks
	}
	span := max(d.cfg.Progression.MaxAt, 1)
	return min(max(float64(measure)/float64(span), 0), 1)
}

// Level returns the difficulty in [InitialLevel, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	return start + (1-start)*d.progress(score, ticks)
}

// Speed scales base by up to 1+SpeedMultiplier at full difficulty.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.cfg.Scaling.SpeedMultiplier*d.Level(score, ticks))
}

// Interval shortens a periodic tick count by up to IntervalReduction.
// The result never drops below floor or below one tick.
func (d *DifficultyManager) Interval(base, floor, score, ticks int) int {
	cut := int(float64(d.cfg.Scaling.IntervalReduction) * d.Level(score, ticks))
	return max(base-cut, floor, 1)
}
