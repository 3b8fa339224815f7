package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelByScore(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if got := dm.Level(1_000_000, 1_000_000); got != 0.5 {
		t.Errorf("Level = %v, want 0.5", got)
	}
	if dm.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})
	if got := dm.Speed(2.0, 0, 0); got != 2.0 {
		t.Errorf("Speed at start = %v, want 2.0", got)
	}
	if got := dm.Speed(2.0, 0, 100); got != 3.0 {
		t.Errorf("Speed at max = %v, want 3.0", got)
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{IntervalReduction: 40},
	})
	if got := dm.Interval(30, 8, 0, 0); got != 30 {
		t.Errorf("Interval at start = %d, want 30", got)
	}
	if got := dm.Interval(30, 8, 50, 0); got != 10 {
		t.Errorf("Interval at half = %d, want 10", got)
	}
	if got := dm.Interval(30, 8, 100, 0); got != 8 {
		t.Errorf("Interval at max = %d, want floor 8", got)
	}
	if got := dm.Interval(0, 0, 0, 0); got != 1 {
		t.Errorf("Interval never drops below one tick, got %d", got)
	}
}
