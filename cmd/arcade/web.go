package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/platform/web"
)

var (
	flagHTTPAddr string
	flagOrigins  []string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the arcade HTTP server for browser play",
	Long: `Start an HTTP server that serves the arcade to web browsers.

The host page renders frames streamed over a WebSocket and sends key
presses back. Touch devices get on-screen buttons. Scores share the
database used by the other commands.

Examples:
  arcade web                                    # Listen on :8080
  arcade web --http 127.0.0.1:9000
  arcade web --origin https://arcade.example    # Restrict WebSocket origins`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
	webCmd.Flags().StringSliceVar(&flagOrigins, "origin", nil, "Allowed WebSocket origins (default: any)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	if err := validateDifficulty(); err != nil {
		return err
	}
	configureAll()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server := web.NewServer(web.ServerConfig{
		Address:        flagHTTPAddr,
		TickRate:       flagFPS,
		Seed:           flagSeed,
		AllowedOrigins: flagOrigins,
	}, store)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
