// Package registry maps game IDs to factories. Game packages register
// themselves from init, so hosts only need a blank import to offer a game.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Game is a deterministic fixed-step simulation. Implementations know
// nothing about terminals or sockets; hosts feed them abstract actions and
// paint the screen they render into.
type Game interface {
	// ID is the stable key used on the command line and in score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run sized to the config's screen and seeded
	// from its Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one tick using the actions held in in.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. It must not change game state.
	Render(dst *core.Screen)

	State() core.GameState
}

// HighScoreAware games show the best stored score in their HUD. Hosts call
// SetHighScore after every Reset and after saving a new score.
type HighScoreAware interface {
	SetHighScore(score int)
}

// Describer games supply a one-line pitch for menus and listings.
type Describer interface {
	Description() string
}

// GameInfo is what hosts show before a game is started.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory builds a new, un-reset game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. A second registration of the same id
// panics since it means two packages claim one name.
func Register(id string, f Factory) {
	probe := f()
	info := GameInfo{ID: id, Title: probe.Title()}
	if d, ok := probe.(Describer); ok {
		info.Description = d.Description()
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
