// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// PacmanConfig contains all configuration for the Pac-Man game.
type PacmanConfig struct {
	Physics    PacmanPhysics    `yaml:"physics"`
	Timing     PacmanTiming     `yaml:"timing"`
	Gameplay   PacmanGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanPhysics defines actor speeds in maze pixels per tick (8 px per cell).
type PacmanPhysics struct {
	PlayerSpeed     float64 `yaml:"player_speed"`
	GhostSpeed      float64 `yaml:"ghost_speed"`
	FrightenedSpeed float64 `yaml:"frightened_speed"`
	EatenSpeed      float64 `yaml:"eaten_speed"`
}

// PacmanTiming defines countdowns and delays, all in ticks.
type PacmanTiming struct {
	FrightenedTicks    int `yaml:"frightened_ticks"`
	FrightenedStep     int `yaml:"frightened_step"` // Reduction per level
	MinFrightenedTicks int `yaml:"min_frightened_ticks"`
	ReleaseInterval    int `yaml:"release_interval"` // Between ghost releases from the pen
	ReadyDelay         int `yaml:"ready_delay"`
	RespawnDelay       int `yaml:"respawn_delay"`
	LevelClearDelay    int `yaml:"level_clear_delay"`
}

// PacmanGameplay defines lives and scoring.
type PacmanGameplay struct {
	Lives        int   `yaml:"lives"`
	PelletPoints int   `yaml:"pellet_points"`
	PowerPoints  int   `yaml:"power_points"`
	GhostPoints  []int `yaml:"ghost_points"` // Escalating award per frightened window
}

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	Ship       AsteroidsShip     `yaml:"ship"`
	Bullets    AsteroidsBullets  `yaml:"bullets"`
	Rocks      AsteroidsRocks    `yaml:"rocks"`
	Gameplay   AsteroidsGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// AsteroidsShip defines ship handling in world units per tick.
type AsteroidsShip struct {
	Headings          int     `yaml:"headings"`
	Thrust            float64 `yaml:"thrust"`
	Friction          float64 `yaml:"friction"`
	MaxSpeed          float64 `yaml:"max_speed"`
	Radius            float64 `yaml:"radius"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
	RespawnDelay      int     `yaml:"respawn_delay"`
}

// AsteroidsBullets defines bullet behavior.
type AsteroidsBullets struct {
	Speed     float64 `yaml:"speed"`
	Lifetime  int     `yaml:"lifetime"`
	MaxActive int     `yaml:"max_active"`
}

// AsteroidsRocks defines asteroid sizes and speeds.
type AsteroidsRocks struct {
	InitialCount int     `yaml:"initial_count"`
	BaseSpeed    float64 `yaml:"base_speed"`
	LargeRadius  float64 `yaml:"large_radius"`
	MediumRadius float64 `yaml:"medium_radius"`
	SmallRadius  float64 `yaml:"small_radius"`
	SafeDistance float64 `yaml:"safe_distance"` // Minimum spawn distance from the ship
}

// AsteroidsGameplay defines lives and scoring.
type AsteroidsGameplay struct {
	Lives          int `yaml:"lives"`
	LargePoints    int `yaml:"large_points"`
	MediumPoints   int `yaml:"medium_points"`
	SmallPoints    int `yaml:"small_points"`
	WaveDelay      int `yaml:"wave_delay"`
	ExtraLifeEvery int `yaml:"extra_life_every"`
}

// KlaxConfig contains all configuration for the Klax game.
type KlaxConfig struct {
	Belt       KlaxBelt         `yaml:"belt"`
	Bin        KlaxBin          `yaml:"bin"`
	Gameplay   KlaxGameplay     `yaml:"gameplay"`
	Scoring    KlaxScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// KlaxBelt defines the conveyor.
type KlaxBelt struct {
	Length       int `yaml:"length"`         // Rows between spawn and paddle
	StepTicks    int `yaml:"step_ticks"`     // Ticks per belt advance
	MinStepTicks int `yaml:"min_step_ticks"` // Fastest belt
	SpawnEvery   int `yaml:"spawn_every"`    // Belt advances between new tiles
}

// KlaxBin defines the bin and paddle sizes. The bin has one column per lane.
type KlaxBin struct {
	Columns        int `yaml:"columns"`
	Rows           int `yaml:"rows"`
	PaddleCapacity int `yaml:"paddle_capacity"`
}

// KlaxGameplay defines wave goals and limits.
type KlaxGameplay struct {
	DropLimit     int `yaml:"drop_limit"`
	KlaxesPerWave int `yaml:"klaxes_per_wave"`
	Colors        int `yaml:"colors"`
	CascadeDelay  int `yaml:"cascade_delay"`
	MessageTicks  int `yaml:"message_ticks"`
}

// KlaxScoring defines points per klax by orientation.
type KlaxScoring struct {
	Vertical   int `yaml:"vertical"`
	Horizontal int `yaml:"horizontal"`
	Diagonal   int `yaml:"diagonal"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // ProgressionScore, ProgressionTime or ProgressionNone
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Ticks removed from periodic intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values map to
// the empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// applyPreset updates the difficulty block for a preset.
func (d *DifficultyConfig) applyPreset(preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
