package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// MenuItem is one pickable game.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
	Best   int // 0 when nothing is stored
}

// menuExit records why the picker closed.
type menuExit int

const (
	menuOpen menuExit = iota
	menuPicked
	menuScores
	menuBack
	menuQuit
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuHelp = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"

// MenuModel is the game picker shown before each game.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	config core.RuntimeConfig
	exit   menuExit
}

// menuItems lists the registered games with their best stored scores.
func menuItems(store *storage.Store) []MenuItem {
	var stats map[string]*storage.GameStats
	if store != nil {
		// The picker still works when the scores can't be read
		stats, _ = store.GetAllGamesStats()
	}

	infos := registry.List()
	items := make([]MenuItem, len(infos))
	for i, info := range infos {
		items[i] = MenuItem{GameID: info.ID, Title: info.Title, Blurb: info.Description}
		if gs := stats[info.ID]; gs != nil {
			items[i].Best = gs.HighScore
		}
	}
	return items
}

// NewMenuModel builds a picker over every registered game.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  menuItems(store),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config = m.config.WithSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.exit != menuOpen {
			return m, nil
		}
		m.exit = m.onKey(menuAction(msg))
		if m.exit != menuOpen {
			return m, tea.Quit
		}
	}
	return m, nil
}

// onKey moves the cursor and returns how the menu should close, if at all.
func (m *MenuModel) onKey(action MenuAction) menuExit {
	last := len(m.items) - 1
	switch action {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, last), 0)
	case MenuActionSelect:
		if last >= 0 {
			return menuPicked
		}
	case MenuActionScoreboard:
		return menuScores
	case MenuActionQuit:
		return menuQuit
	}
	return menuOpen
}

func (m MenuModel) View() string {
	if m.exit == menuQuit {
		return ""
	}

	lines := []string{
		"",
		centerStyled(menuTitleStyle, "A R C A D E   C L A S S I C S", m.width),
		"",
		centerText("Select a game", m.width),
		"",
	}
	for i, item := range m.items {
		lines = append(lines, m.itemLine(i, item))
	}
	if len(m.items) > 0 && m.items[m.cursor].Blurb != "" {
		lines = append(lines, "", centerStyled(menuDimStyle, m.items[m.cursor].Blurb, m.width))
	}
	lines = append(lines, "", centerStyled(menuDimStyle, menuHelp, m.width), "")
	return strings.Join(lines, "\n")
}

func (m MenuModel) itemLine(i int, item MenuItem) string {
	marker := "  "
	if i == m.cursor {
		marker = "> "
	}
	line := fmt.Sprintf("%s%-12s", marker, item.Title)
	if item.Best > 0 {
		line += fmt.Sprintf("  (HI %d)", item.Best)
	}
	if i == m.cursor {
		return centerStyled(menuSelectedStyle, line, m.width)
	}
	return centerText(line, m.width)
}

// Selected returns the picked game, or nil.
func (m MenuModel) Selected() *MenuItem {
	if m.exit != menuPicked {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

func (m MenuModel) IsQuitting() bool      { return m.exit == menuQuit }
func (m MenuModel) WantsScoreboard() bool { return m.exit == menuScores }

// Config returns the runtime config including any resize seen by the menu.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerStyled centers text by its visible width, then styles it.
func centerStyled(st lipgloss.Style, text string, width int) string {
	pad := max((width-lipgloss.Width(text))/2, 0)
	return strings.Repeat(" ", pad) + st.Render(text)
}

// centerText left-pads text to center it. Text wider than width is
// returned unchanged.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what RunMenu reports back to the menu loop.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker full screen until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch m.exit {
	case menuScores:
		res.WantsScoreboard = true
	case menuPicked:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
