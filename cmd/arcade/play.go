package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/platform/tui"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move, steer or thrust
  Space       - Fire (Asteroids), drop tile (Klax)
  Down        - Hyperspace (Asteroids), toss tile back (Klax)
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Leave the game
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play pacman
  arcade play asteroids --difficulty easy
  arcade play klax --difficulty hard
  arcade play pacman --seed 42
  arcade play pacman --config ./my-pacman.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := validateDifficulty(); err != nil {
		return err
	}

	configureGame(gameID, flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), localPlayer()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
