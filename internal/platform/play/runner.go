// Package play runs one game for a host. It owns the fixed-step clock, the
// input collected between host ticks and the score bookkeeping, so the
// terminal and browser hosts behave the same.
package play

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// DefaultPlayer names scores when the host knows no player.
const DefaultPlayer = "player"

// Options are the optional parts of a Runner.
type Options struct {
	Store  *storage.Store // nil plays without scores
	Player string
	Logger *log.Logger
}

// Runner drives a game at its tick rate. It is not safe for concurrent use.
type Runner struct {
	game      registry.Game
	store     *storage.Store
	logger    *log.Logger
	player    string
	config    core.RuntimeConfig
	fixedSeed bool
	clock     *core.FrameClock
	input     core.InputFrame
	state     core.GameState
	highScore int
	saved     bool
}

// New wraps game. A zero cfg.Seed means every run gets a fresh time-based
// seed; any other seed is replayed on every restart.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	r := &Runner{
		game:      game,
		store:     opts.Store,
		logger:    opts.Logger,
		player:    opts.Player,
		config:    cfg,
		fixedSeed: cfg.Seed != 0,
		clock:     core.NewFrameClock(cfg.TickRate),
	}
	if r.player == "" {
		r.player = DefaultPlayer
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Start resets the game for a new run.
func (r *Runner) Start() {
	if !r.fixedSeed {
		r.config.Seed = time.Now().UnixNano()
	}
	r.game.Reset(r.config)
	r.refreshHighScore()
	r.state = r.game.State()
	r.input.Clear()
	r.clock.Reset()
	r.saved = false
}

// Press queues an action for the next step. Restart after game over starts
// a new run right away with a new seed, unless the seed is fixed, in which
// case the game restarts itself on its next step.
func (r *Runner) Press(a core.Action) {
	if a == core.ActionRestart && r.state.GameOver && !r.fixedSeed {
		r.Start()
		return
	}
	r.input.Set(a)
}

// Advance runs the steps due at now and returns how many ran. Queued input
// goes to the first of them.
func (r *Runner) Advance(now time.Time) int {
	steps := r.clock.Advance(now)
	for range steps {
		r.state = r.game.Step(r.input).State
		r.input.Clear()
		r.recordScore()
	}
	return steps
}

// Resize adopts a new screen size. Layouts depend on it, so a run in
// progress starts over.
func (r *Runner) Resize(w, h int) {
	r.config = r.config.WithSize(w, h)
	if !r.state.GameOver {
		r.Start()
	}
}

// recordScore saves the final score once per game over.
func (r *Runner) recordScore() {
	if !r.state.GameOver {
		r.saved = false
		return
	}
	if r.saved {
		return
	}
	r.saved = true
	if r.store == nil || r.state.Score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.game.ID(), r.player, r.state.Score); err != nil {
		r.logger.Warn("could not save score", "game", r.game.ID(), "error", err)
		return
	}
	r.refreshHighScore()
}

// refreshHighScore reads the stored best and hands it to the game.
func (r *Runner) refreshHighScore() {
	if r.store == nil {
		return
	}
	best, err := r.store.HighScore(r.game.ID())
	if err != nil {
		r.logger.Warn("could not read high score", "game", r.game.ID(), "error", err)
		return
	}
	r.highScore = best
	if hs, ok := r.game.(registry.HighScoreAware); ok {
		hs.SetHighScore(best)
	}
}

// Render draws the current frame onto dst.
func (r *Runner) Render(dst *core.Screen) { r.game.Render(dst) }

// Game returns the wrapped game.
func (r *Runner) Game() registry.Game { return r.game }

// Config returns the runtime config of the current run, seed included.
func (r *Runner) Config() core.RuntimeConfig { return r.config }

// Player returns the name scores are saved under.
func (r *Runner) Player() string { return r.player }

// State is the game state after the last step.
func (r *Runner) State() core.GameState { return r.state }

// HighScore is the best stored score, 0 without a store.
func (r *Runner) HighScore() int { return r.highScore }
