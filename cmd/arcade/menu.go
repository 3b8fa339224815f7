package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform/tui"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := validateDifficulty(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := localPlayer()

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !back {
				return nil
			}
		case res.GameID != "":
			playFromMenu(res.GameID, store, cfg, player)
		default:
			return nil
		}
	}
}

// playFromMenu runs one game and returns to the menu whatever happens.
func playFromMenu(id string, store *storage.Store, cfg core.RuntimeConfig, player string) {
	configureGame(id, "")
	game, err := registry.Create(id)
	if err != nil {
		logger.Error("creating game", "game", id, "error", err)
		return
	}
	if err := tui.Run(game, store, cfg, player); err != nil {
		logger.Error("game failed", "game", id, "error", err)
	}
}
