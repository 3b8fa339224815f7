package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform/play"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// Model plays one game in the terminal.
type Model struct {
	runner     *play.Runner
	screen     *core.Screen
	palette    *Palette
	logger     *log.Logger
	gen        int
	embedded   bool // Back returns to an enclosing session instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel wraps game for a standalone run. player names the scores saved
// at game over; an empty name uses play.DefaultPlayer.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	return newModel(game, store, cfg, player, log.Default())
}

func newModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	return Model{
		runner:  play.New(game, cfg, play.Options{Store: store, Player: player, Logger: logger}),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette: defaultPalette,
		logger:  logger,
	}
}

func (m Model) Init() tea.Cmd {
	m.runner.Start()
	return m.nextTick()
}

func (m Model) nextTick() tea.Cmd {
	return tickCmd(m.runner.Config().TickRate, m.gen)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.runner.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.runner.Advance(msg.At)
		return m, m.nextTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := gameAction(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	default:
		m.runner.Press(action)
	}
	return m, nil
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.runner.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.runner.Game().ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.runner.Render(m.screen)
	return m.palette.Render(m.screen)
}

// IsQuitting reports whether the player asked to leave the arcade.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether an embedded model was asked to return to the menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// GameState returns the state after the last simulated step.
func (m Model) GameState() core.GameState { return m.runner.State() }

// Run plays game in the alternate screen until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	if _, err := tea.NewProgram(NewModel(game, store, cfg, player), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
