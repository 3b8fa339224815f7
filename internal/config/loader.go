package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// load resolves the config for gameID. An explicit customPath must exist
// and parse. Otherwise the first readable file among
// ~/.arcade/configs/<game>.yaml and ./configs/<game>.yaml wins, then the
// embedded YAML. Each source is decoded over the hard-coded default, so a
// file only needs the keys it changes.
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data, fallback)
		if err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(gameID + ".yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data, fallback)
		if err != nil {
			log.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	cfg, err := decode(embedded, fallback)
	if err != nil {
		return cfg, fmt.Errorf("config: embedded %s defaults: %w", gameID, err)
	}
	return cfg, nil
}

// decode unmarshals data over a fresh default. On error the untouched
// default is returned.
func decode[T any](data []byte, fallback func() T) (T, error) {
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), err
	}
	return cfg, nil
}

// searchPaths lists the override locations for filename, user first.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// LoadPacman loads Pac-Man configuration.
func LoadPacman(customPath string) (PacmanConfig, error) {
	return load("pacman", customPath, defaultPacmanYAML, DefaultPacmanConfig)
}

// LoadAsteroids loads Asteroids configuration.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids", customPath, defaultAsteroidsYAML, DefaultAsteroidsConfig)
}

// LoadKlax loads Klax configuration.
func LoadKlax(customPath string) (KlaxConfig, error) {
	cfg, err := load("klax", customPath, defaultKlaxYAML, DefaultKlaxConfig)
	if err != nil {
		return cfg, err
	}
	if cfg.Bin.Columns < 3 || cfg.Bin.Rows < 3 {
		return DefaultKlaxConfig(), fmt.Errorf("config: klax bin must be at least 3x3, got %dx%d", cfg.Bin.Columns, cfg.Bin.Rows)
	}
	return cfg, nil
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	cfg.Difficulty.applyPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Timing.FrightenedTicks += 120
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.GhostSpeed = cfg.Physics.PlayerSpeed
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	cfg.Difficulty.applyPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Rocks.InitialCount = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Rocks.InitialCount = 6
	}
}

// ApplyKlaxPreset modifies the config based on a difficulty preset.
func ApplyKlaxPreset(cfg *KlaxConfig, preset DifficultyPreset) {
	cfg.Difficulty.applyPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.DropLimit = 5
		cfg.Belt.StepTicks += 10
	case DifficultyHard:
		cfg.Gameplay.DropLimit = 2
		cfg.Belt.StepTicks = max(cfg.Belt.StepTicks-10, cfg.Belt.MinStepTicks)
	}
}
