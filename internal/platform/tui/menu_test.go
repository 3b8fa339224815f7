package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return mm
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	idx := -1
	for i, it := range m.items {
		if it.GameID == "stub" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("stub game missing from menu")
	}

	// Cursor stays in range at both ends
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}
	for range len(m.items) + 2 {
		m = menuUpdate(t, m, runeKey("j"))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want last", m.cursor)
	}

	m.cursor = idx
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "stub" {
		t.Fatalf("Selected() = %+v, want stub", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if next := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab}); !next.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
	if next := menuUpdate(t, m, runeKey("q")); !next.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 100x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.SaveScore("stub", "ann", 4321); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	view := m.View()
	if !strings.Contains(view, "Stub") || !strings.Contains(view, "HI 4321") {
		t.Errorf("menu view missing stub best score:\n%s", view)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}
