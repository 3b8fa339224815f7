// Command arcade plays Pac-Man, Asteroids and Klax in a terminal, serves
// them over SSH and hosts them for browsers. Run "arcade help" for the
// command list.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/core"

	// Games register themselves on import
	_ "github.com/vovakirdan/arcade-classics/internal/games/asteroids"
	_ "github.com/vovakirdan/arcade-classics/internal/games/klax"
	_ "github.com/vovakirdan/arcade-classics/internal/games/pacman"
)

// Persistent flags shared by every command.
var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pac-Man, Asteroids and Klax for terminals and browsers",
	Long: `arcade runs character-cell remakes of classic arcade games.

Play locally with "play" or "menu", host the same games for other people
with "serve" (SSH) or "web" (browser), and read the score tables with
"scores". Scores go to a SQLite file by default; pass a postgres:// URL
to --db to share one table between hosts.`,
	Example: `  arcade play pacman --seed 42
  arcade menu --difficulty hard
  arcade serve --ssh :2222
  arcade web --http :8080 --db postgres://arcade@localhost/arcade`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Simulation steps per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Scores database: SQLite path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, scoresCmd, serveCmd, webCmd)
}
