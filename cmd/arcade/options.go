package main

import (
	"fmt"
	"os"
	"os/user"

	"golang.org/x/term"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/games/asteroids"
	"github.com/vovakirdan/arcade-classics/internal/games/klax"
	"github.com/vovakirdan/arcade-classics/internal/games/pacman"
	"github.com/vovakirdan/arcade-classics/internal/platform/play"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// gameOptions holds the per-game package setters for CLI options.
type gameOptions struct {
	setConfigPath func(string)
	setDifficulty func(string)
}

var gameSetters = map[string]gameOptions{
	"pacman":    {pacman.SetConfigPath, pacman.SetDifficultyPreset},
	"asteroids": {asteroids.SetConfigPath, asteroids.SetDifficultyPreset},
	"klax":      {klax.SetConfigPath, klax.SetDifficultyPreset},
}

// configureGame applies --config and --difficulty to one game before creation.
func configureGame(id, configPath string) {
	opts, ok := gameSetters[id]
	if !ok {
		return
	}
	opts.setConfigPath(configPath)
	opts.setDifficulty(flagDifficulty)
}

// configureAll applies --difficulty to every game, for the servers.
func configureAll() {
	for _, opts := range gameSetters {
		opts.setDifficulty(flagDifficulty)
	}
}

// validateDifficulty rejects unknown --difficulty values.
func validateDifficulty() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failure is logged and play goes on
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// localPlayer names local score entries after the OS user.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return play.DefaultPlayer
}
