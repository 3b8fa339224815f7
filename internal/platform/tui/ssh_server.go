// Package tui hosts arcade games in a terminal, either locally or for remote
// players over SSH.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	gossh "golang.org/x/crypto/ssh"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

const shutdownGrace = 10 * time.Second

type sessionIDKey struct{}

// SSHServerConfig configures the SSH arcade.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.arcade/host_key. Wish generates the key
	// on first start when the file does not exist.
	HostKeyPath string

	IdleTimeout time.Duration
	TickRate    int
}

// DefaultSSHServerConfig listens on :23234.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultTickRate,
	}
}

// SSHServer gives every SSH connection its own menu and games. All
// sessions share one score store.
type SSHServer struct {
	config  SSHServerConfig
	hostKey string
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer prepares the server. store may be nil, in which case
// sessions play without scores. The caller keeps ownership of store.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store) (*SSHServer, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	hostKey, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{
		config:  cfg,
		hostKey: hostKey,
		store:   store,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		}),
	}

	// Middleware runs last to first: log, require a PTY, then start Bubble Tea.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.trackSession,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create ssh server: %w", err)
	}
	return s, nil
}

// resolveHostKey fills in the default key location and makes sure its
// directory exists.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: locate home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

// trackSession tags the connection with an ID and logs its lifetime.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)
		logger := s.logger.With("session", id, "user", sess.User())

		start := time.Now()
		logger.Info("session started", "remote", sess.RemoteAddr().String())
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// newSession builds the Bubble Tea model for one connection. Colors come
// from a renderer bound to the client's terminal.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	id, _ := sess.Context().Value(sessionIDKey{}).(string)
	model := NewSessionModel(s.store, cfg, sess.User(), s.logger.With("session", id, "user", sess.User()))
	model.palette = NewPalette(bubbletea.MakeRenderer(sess))
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	fields := []any{"address", s.config.Address}
	if fp, err := HostKeyFingerprint(s.hostKey); err == nil {
		fields = append(fields, "host_key", fp)
	}
	s.logger.Info("starting SSH server", fields...)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// HostKeyFingerprint returns the SHA256 fingerprint of the private key at
// path, formatted the way ssh clients print it.
func HostKeyFingerprint(path string) (string, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("tui: read host key: %w", err)
	}
	signer, err := gossh.ParsePrivateKey(pemBytes)
	if err != nil {
		return "", fmt.Errorf("tui: parse host key: %w", err)
	}
	return gossh.FingerprintSHA256(signer.PublicKey()), nil
}
