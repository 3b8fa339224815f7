package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the arcade over SSH",
	Long: `Run an SSH server where every connection gets its own game menu.

All players share one leaderboard. Scores are saved under the SSH user name.
Without --host-key a key is generated at ~/.arcade/host_key on first start,
and its fingerprint is logged at startup.

Examples:
  arcade serve
  arcade serve --ssh :2222 --host-key ./host_key
  arcade serve --db postgres://arcade@localhost/arcade

Players connect with:
  ssh -p 23234 localhost`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "host key file (generated when missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "disconnect idle sessions after this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := validateDifficulty(); err != nil {
		return err
	}
	configureAll()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
	}, store)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
