package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model that scheduled it; ticks from a replaced model are dropped.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd schedules the next TickMsg one step interval from now.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
