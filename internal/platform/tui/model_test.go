package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// stubGame records the inputs it is stepped with and ends when told to.
type stubGame struct {
	resets    int
	steps     int
	inputs    []core.InputFrame
	score     int
	endAfter  int
	gameOver  bool
	highScore int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.gameOver = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	if g.endAfter > 0 && g.steps >= g.endAfter {
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver}
}

func (g *stubGame) SetHighScore(score int) {
	g.highScore = score
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestModelTickRunsFixedSteps(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testRuntime(), "")
	m.Init()
	if game.resets != 1 {
		t.Fatalf("resets = %d, want 1", game.resets)
	}

	t0 := time.Unix(1000, 0)
	step := time.Second / 60

	m = update(t, m, TickMsg{At: t0})
	if game.steps != 1 {
		t.Fatalf("first tick: steps = %d, want 1", game.steps)
	}

	m = update(t, m, TickMsg{At: t0.Add(step)})
	if game.steps != 2 {
		t.Fatalf("second tick: steps = %d, want 2", game.steps)
	}

	// A late frame catches up with several steps
	m = update(t, m, TickMsg{At: t0.Add(4 * step)})
	if game.steps != 5 {
		t.Fatalf("late tick: steps = %d, want 5", game.steps)
	}

	// Ticks from another model generation are ignored
	update(t, m, TickMsg{At: t0.Add(10 * step), Gen: 7})
	if game.steps != 5 {
		t.Errorf("stale tick stepped the game: steps = %d", game.steps)
	}
}

func TestModelInputGoesToFirstStepOnly(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testRuntime(), "")
	m.Init()

	t0 := time.Unix(1000, 0)
	m = update(t, m, TickMsg{At: t0})

	m = update(t, m, runeKey("d"))
	update(t, m, TickMsg{At: t0.Add(3 * time.Second / 60)})

	if len(game.inputs) != 4 {
		t.Fatalf("steps = %d, want 4", len(game.inputs))
	}
	if !game.inputs[1].Has(core.ActionRight) {
		t.Error("first step after the key should see Right")
	}
	for _, in := range game.inputs[2:] {
		if in.Has(core.ActionRight) {
			t.Error("input leaked into a later step")
		}
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := &stubGame{score: 1234, endAfter: 2}
	m := NewModel(game, store, testRuntime(), "alice")
	m.Init()

	t0 := time.Unix(1000, 0)
	step := time.Second / 60
	for i := range 5 {
		m = update(t, m, TickMsg{At: t0.Add(time.Duration(i) * step)})
	}

	if !m.GameState().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != 1234 {
		t.Errorf("saved %+v, want alice/1234", scores[0])
	}
	if game.highScore != 1234 {
		t.Errorf("high score = %d, want 1234", game.highScore)
	}
}

func TestModelAppliesStoredHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.SaveScore("stub", "bob", 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	game := &stubGame{}
	m := NewModel(game, store, testRuntime(), "")
	m.Init()

	if game.highScore != 900 {
		t.Errorf("high score = %d, want 900", game.highScore)
	}
}

func TestModelBack(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime(), "")
	next := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !next.IsQuitting() {
		t.Error("standalone model should quit on back")
	}

	m = NewModel(&stubGame{}, nil, testRuntime(), "")
	m.embedded = true
	next = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if next.IsQuitting() {
		t.Error("embedded model should not quit on back")
	}
	if !next.BackToMenu() {
		t.Error("embedded model should return to menu on back")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime(), "")
	m.Init()
	if !strings.Contains(m.View(), "STUB") {
		t.Errorf("View() missing game output:\n%s", m.View())
	}

	m = update(t, m, runeKey("q"))
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeAndRestart(t *testing.T) {
	game := &stubGame{endAfter: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, "")
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if game.resets != 2 {
		t.Fatalf("resets = %d, want a restart on resize", game.resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, want 60x20", m.screen.Width(), m.screen.Height())
	}

	m = update(t, m, TickMsg{At: time.Unix(1000, 0)})
	if !m.GameState().GameOver {
		t.Fatal("expected game over")
	}
	m = update(t, m, runeKey("r"))
	if game.resets != 3 || m.GameState().GameOver {
		t.Errorf("r after game over should start a new run, resets = %d", game.resets)
	}
}
