package web

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform/play"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// Screen size limits accepted from the host page.
const (
	defaultScreenW = 80
	defaultScreenH = 24
	minScreenW     = 40
	minScreenH     = 12
	maxScreenW     = 160
	maxScreenH     = 60
	maxPlayerName  = 16
)

// Sender queues a message for the client.
type Sender interface {
	SendMessage(t MessageType, payload any) error
}

// Session runs at most one game for one browser connection. Messages arrive
// on the read goroutine and ticks on Run's goroutine; mu serializes them.
type Session struct {
	ID string

	out      Sender
	store    *storage.Store
	logger   *log.Logger
	tickRate int
	seed     int64

	mu     sync.Mutex
	run    *play.Runner // nil in the menu
	screen *core.Screen
}

// NewSession creates a session in the menu state. logger should already
// carry the session ID. A zero seed picks a time-based seed for every game
// started.
func NewSession(id string, out Sender, store *storage.Store, logger *log.Logger, tickRate int, seed int64) *Session {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		ID:       id,
		out:      out,
		store:    store,
		logger:   logger,
		tickRate: tickRate,
		seed:     seed,
	}
}

// Hello sends the session ID, the game list and the color palette.
func (s *Session) Hello() error {
	return s.out.SendMessage(MessageTypeHello, HelloMessage{
		Session: s.ID,
		Games:   gameEntries(s.store),
		Palette: palette,
	})
}

// Run drives the frame clock until ctx is canceled. Cancellation drops the
// running game along with any transitions it still had scheduled.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.stopLocked("disconnect")
			s.mu.Unlock()
			return
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

// Tick advances the running game by the steps the frame clock allows and
// sends the rendered frame. Nothing is sent when no step ran.
func (s *Session) Tick(now time.Time) {
	s.mu.Lock()
	if s.run == nil || s.run.Advance(now) == 0 {
		s.mu.Unlock()
		return
	}
	s.run.Render(s.screen)
	frame := encodeFrame(s.screen, s.run.State(), s.run.HighScore())
	s.mu.Unlock()

	//nolint:errcheck // A closed connection also cancels Run
	s.out.SendMessage(MessageTypeFrame, frame)
}

// HandleMessage applies a client message.
func (s *Session) HandleMessage(msg InboundMessage) {
	switch msg.Type {
	case MessageTypeStart:
		var start StartMessage
		if err := json.Unmarshal(msg.Payload, &start); err != nil {
			s.sendError("bad_message", "malformed start payload")
			return
		}
		s.start(start)

	case MessageTypeKey:
		var key KeyMessage
		if err := json.Unmarshal(msg.Payload, &key); err != nil {
			s.sendError("bad_message", "malformed key payload")
			return
		}
		s.key(key.Key)

	case MessageTypeStop:
		s.backToMenu()

	default:
		s.sendError("unknown_type", "unknown message type "+string(msg.Type))
	}
}

// start replaces any running game with a fresh instance of the requested one.
func (s *Session) start(req StartMessage) {
	game, err := registry.Create(req.Game)
	if err != nil {
		s.sendError("unknown_game", err.Error())
		return
	}

	player := playerName(req.Player)
	cfg := core.RuntimeConfig{
		ScreenW:  clampDim(req.Width, defaultScreenW, minScreenW, maxScreenW),
		ScreenH:  clampDim(req.Height, defaultScreenH, minScreenH, maxScreenH),
		TickRate: s.tickRate,
		Seed:     s.seed,
	}

	s.mu.Lock()
	s.stopLocked("replaced")
	s.run = play.New(game, cfg, play.Options{
		Store:  s.store,
		Player: player,
		Logger: s.logger,
	})
	s.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	s.run.Start()
	s.mu.Unlock()

	s.logger.Info("game started", "game", req.Game, "player", player)
}

// key maps a browser key name to an action for the next step.
func (s *Session) key(name string) {
	action := core.KeyAction(name)
	switch action {
	case core.ActionNone:
		return
	case core.ActionBack, core.ActionQuit:
		s.backToMenu()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != nil {
		s.run.Press(action)
	}
}

// backToMenu stops the running game and sends the game list.
func (s *Session) backToMenu() {
	s.mu.Lock()
	s.stopLocked("back")
	s.mu.Unlock()

	//nolint:errcheck // A closed connection also cancels Run
	s.out.SendMessage(MessageTypeGames, GamesMessage{Games: gameEntries(s.store)})
}

// stopLocked drops the running game, if any.
func (s *Session) stopLocked(reason string) {
	if s.run == nil {
		return
	}
	st := s.run.State()
	s.logger.Info("game ended", "game", s.run.Game().ID(), "score", st.Score, "reason", reason)
	s.run = nil
	s.screen = nil
}

func (s *Session) sendError(code, message string) {
	//nolint:errcheck // Best-effort reply
	s.out.SendMessage(MessageTypeError, ErrorMessage{Code: code, Message: message})
}

// gameEntries lists registered games with their stored best scores.
func gameEntries(store *storage.Store) []GameEntry {
	games := registry.List()
	entries := make([]GameEntry, 0, len(games))
	for _, g := range games {
		e := GameEntry{ID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				e.Best = best
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// playerName keeps letters, digits, '-' and '_' and caps the length.
func playerName(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if b.Len() >= maxPlayerName {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "guest"
	}
	return b.String()
}

func clampDim(v, def, lo, hi int) int {
	if v <= 0 {
		return def
	}
	return min(max(v, lo), hi)
}
