package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/klax.yaml
var defaultKlaxYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Physics: PacmanPhysics{
			PlayerSpeed:     1.0,
			GhostSpeed:      0.9,
			FrightenedSpeed: 0.5,
			EatenSpeed:      2.0,
		},
		Timing: PacmanTiming{
			FrightenedTicks:    360,
			FrightenedStep:     30,
			MinFrightenedTicks: 120,
			ReleaseInterval:    90,
			ReadyDelay:         90,
			RespawnDelay:       90,
			LevelClearDelay:    120,
		},
		Gameplay: PacmanGameplay{
			Lives:        3,
			PelletPoints: 10,
			PowerPoints:  50,
			GhostPoints:  []int{200, 400, 800, 1600},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.2,
			},
		},
	}
}

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: AsteroidsShip{
			Headings:          16,
			Thrust:            0.06,
			Friction:          0.985,
			MaxSpeed:          1.2,
			Radius:            1.5,
			InvulnerableTicks: 120,
			RespawnDelay:      90,
		},
		Bullets: AsteroidsBullets{
			Speed:     1.6,
			Lifetime:  40,
			MaxActive: 4,
		},
		Rocks: AsteroidsRocks{
			InitialCount: 4,
			BaseSpeed:    0.25,
			LargeRadius:  6.0,
			MediumRadius: 3.5,
			SmallRadius:  2.0,
			SafeDistance: 16.0,
		},
		Gameplay: AsteroidsGameplay{
			Lives:          3,
			LargePoints:    20,
			MediumPoints:   50,
			SmallPoints:    100,
			WaveDelay:      120,
			ExtraLifeEvery: 10000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultKlaxConfig returns the default Klax configuration.
func DefaultKlaxConfig() KlaxConfig {
	return KlaxConfig{
		Belt: KlaxBelt{
			Length:       8,
			StepTicks:    30,
			MinStepTicks: 8,
			SpawnEvery:   2,
		},
		Bin: KlaxBin{
			Columns:        5,
			Rows:           5,
			PaddleCapacity: 5,
		},
		Gameplay: KlaxGameplay{
			DropLimit:     3,
			KlaxesPerWave: 5,
			Colors:        5,
			CascadeDelay:  15,
			MessageTicks:  60,
		},
		Scoring: KlaxScoring{
			Vertical:   50,
			Horizontal: 1000,
			Diagonal:   5000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 50000,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 16,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	case "asteroids":
		return defaultAsteroidsYAML
	case "klax":
		return defaultKlaxYAML
	default:
		return nil
	}
}
