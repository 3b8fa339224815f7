package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// gameAction maps a key press to a game action through the table shared
// with the web host.
func gameAction(msg tea.KeyMsg) core.Action {
	return core.KeyAction(msg.String())
}

// MenuAction is a navigation intent on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

type menuBinding struct {
	action  MenuAction
	binding key.Binding
}

// menuBindings are checked in order; the first match wins.
var menuBindings = []menuBinding{
	{MenuActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"))},
	{MenuActionUp, key.NewBinding(key.WithKeys("up", "w", "k"))},
	{MenuActionDown, key.NewBinding(key.WithKeys("down", "s", "j"))},
	{MenuActionSelect, key.NewBinding(key.WithKeys("enter", " "))},
	{MenuActionBack, key.NewBinding(key.WithKeys("esc", "b"))},
	{MenuActionScoreboard, key.NewBinding(key.WithKeys("tab"))},
}

// menuAction maps a key press on the menu to a navigation intent.
func menuAction(msg tea.KeyMsg) MenuAction {
	for _, mb := range menuBindings {
		if key.Matches(msg, mb.binding) {
			return mb.action
		}
	}
	return MenuActionNone
}
