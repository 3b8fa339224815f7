package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// scoreboardLimit caps how many entries one game's table loads.
const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 3)
	boardSummaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("up/down", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses the stored scores one game at a time.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	best   map[string]int
	page   int
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int
	exit   menuExit
}

// NewScoreboardModel opens the scoreboard on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		best:   map[string]int{},
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	if store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			for id, st := range all {
				m.best[id] = st.HighScore
			}
		}
	}
	m.table = newScoreTable(width, height)
	m.load()
	return m
}

// newScoreTable sizes the score table to the terminal.
func newScoreTable(width, height int) table.Model {
	playerW := min(max(width-48, 12), 24)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: playerW},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(st)
	return t
}

// load fills the table for the current page.
func (m *ScoreboardModel) load() {
	m.stats = nil
	var rows []table.Row
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.page].ID
		if entries, err := m.store.TopScores(id, scoreboardLimit); err == nil {
			rows = make([]table.Row, len(entries))
			for i, e := range entries {
				rows[i] = table.Row{
					"#" + strconv.Itoa(i+1),
					e.Player,
					strconv.Itoa(e.Score),
					e.CreatedAt.Format("Jan 02 15:04"),
				}
			}
		}
		if st, err := m.store.GetGameStats(id); err == nil && st.GamesCount > 0 {
			m.stats = st
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// turn moves delta pages, wrapping at both ends.
func (m *ScoreboardModel) turn(delta int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.page = ((m.page+delta)%n + n) % n
	m.load()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.load()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = menuQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = menuBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.turn(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.turn(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.exit != menuOpen {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.page].Title
	}

	body := boardEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	if len(m.table.Rows()) > 0 {
		body = m.table.View()
		if m.stats != nil {
			body += "\n" + boardSummaryStyle.Render(fmt.Sprintf("%d games  |  best %d  |  avg %.0f  |  last %s",
				m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04")))
		}
	}

	board := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render(title),
		"",
		m.tabs(),
		"",
		boardFrameStyle.Render(body),
	)
	if m.width > 0 {
		board = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board)
	}
	return "\n" + board + "\n\n" + menuDimStyle.Render(m.help.View(m.keys))
}

// tabs renders one tab per game with its best score. When they don't fit,
// only the current game is shown between arrows.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		label := g.Title
		if best := m.best[g.ID]; best > 0 {
			label += " " + strconv.Itoa(best)
		}
		if i == m.page {
			parts[i] = boardActiveTab.Render(label)
		} else {
			parts[i] = boardTabStyle.Render(label)
		}
	}
	line := strings.Join(parts, " ")
	if m.width > 0 && lipgloss.Width(line) > m.width-4 {
		return boardActiveTab.Render("< " + m.games[m.page].Title + " >")
	}
	return line
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.exit == menuBack }

// IsQuitting reports whether the player asked to leave the arcade.
func (m ScoreboardModel) IsQuitting() bool { return m.exit == menuQuit }

// RunScoreboard shows the scoreboard full screen. goBack is true when the
// player pressed Back rather than Quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
