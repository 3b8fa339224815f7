// Package web serves the arcade to browsers: an embedded host page renders
// frames streamed over a WebSocket and sends key presses back.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the simulation rate for every session.
	TickRate int

	// Seed fixes the RNG seed for every game; 0 picks one per game.
	Seed int64

	// AllowedOrigins restricts WebSocket upgrades. Empty allows any origin.
	AllowedOrigins []string
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:  ":8080",
		TickRate: core.DefaultTickRate,
	}
}

// Server hosts the browser arcade.
type Server struct {
	config   ServerConfig
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewServer creates a web server. store may be nil; scores are then not kept.
func NewServer(cfg ServerConfig, store *storage.Store) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-web",
	})

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config:   cfg,
		store:    store,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*Session),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes: the host page, the socket and a small
// JSON API for game and score listings.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded static files: %v", err))
	}
	mux.Handle("GET /", http.FileServerFS(static))
	mux.HandleFunc("GET /ws", s.serveWS)
	mux.HandleFunc("GET /api/games", s.serveGames)
	mux.HandleFunc("GET /api/scores/{game}", s.serveScores)

	return mux
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.config.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, o := range s.config.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// serveWS upgrades the request and runs a session until the socket closes.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id)
	conn := NewConnection(ws, logger)
	sess := NewSession(id, conn, s.store, logger, s.config.TickRate, s.config.Seed)

	s.track(sess)
	defer s.untrack(sess)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	logger.Info("session started", "remote", r.RemoteAddr)
	start := time.Now()

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		conn.WritePump()
	}()
	go func() {
		defer s.wg.Done()
		sess.Run(ctx)
	}()
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-conn.Done():
		}
	}()

	if err := sess.Hello(); err != nil {
		conn.Close()
	}
	conn.ReadPump(sess)

	logger.Info("session ended", "remote", r.RemoteAddr, "duration", time.Since(start).Round(time.Second))
}

func (s *Server) serveGames(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, gameEntries(s.store))
}

// scoreRow is one entry of the scores API.
type scoreRow struct {
	Player string    `json:"player"`
	Score  int       `json:"score"`
	At     time.Time `json:"at"`
}

func (s *Server) serveScores(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("game")
	if !registry.Exists(id) {
		writeJSON(w, http.StatusNotFound, ErrorMessage{Code: "unknown_game", Message: "unknown game " + id})
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusOK, []scoreRow{})
		return
	}

	entries, err := s.store.TopScores(id, 10)
	if err != nil {
		s.logger.Error("top scores", "game", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorMessage{Code: "storage", Message: "could not load scores"})
		return
	}
	rows := make([]scoreRow, len(entries))
	for i, e := range entries {
		rows[i] = scoreRow{Player: e.Player, Score: e.Score, At: e.CreatedAt}
	}
	writeJSON(w, http.StatusOK, rows)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client may have gone away
	json.NewEncoder(w).Encode(v)
}

func (s *Server) track(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()
	s.logger.Debug("sessions", "active", n)
}

func (s *Server) untrack(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
}

// ActiveSessions returns the number of connected browsers.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("starting web server", "address", l.Addr().String())
	err := s.http.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServe serves on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("web: listen: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting requests and ends every session.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.http.Shutdown(ctx)
	s.cancel()
	s.wg.Wait()
	return err
}

// Addr returns the server's configured listen address.
func (s *Server) Addr() string {
	return s.config.Address
}
