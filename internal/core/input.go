package core

import "strings"

// Action is an abstract control. Hosts translate physical keys into
// actions so games never see key names.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // move up, thrust
	ActionDown           // move down, hyperspace
	ActionLeft           // move or rotate left
	ActionRight          // move or rotate right
	ActionFire           // fire, drop a tile
	ActionConfirm        // menu select
	ActionBack           // leave the game
	ActionRestart        // new run after game over
	ActionQuit           // leave the arcade
	ActionPause          // toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Fire",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// keyActions covers Bubble Tea key names and the browser's KeyboardEvent.key
// values, so the terminal and the web page share one set of controls.
var keyActions = map[string]Action{
	"ctrl+c": ActionQuit, "q": ActionQuit,
	"w": ActionUp, "up": ActionUp, "ArrowUp": ActionUp,
	"s": ActionDown, "down": ActionDown, "ArrowDown": ActionDown,
	"a": ActionLeft, "left": ActionLeft, "ArrowLeft": ActionLeft,
	"d": ActionRight, "right": ActionRight, "ArrowRight": ActionRight,
	" ": ActionFire, "space": ActionFire,
	"enter": ActionConfirm, "Enter": ActionConfirm,
	"b": ActionBack, "esc": ActionBack, "Escape": ActionBack,
	"p": ActionPause,
	"r": ActionRestart,
}

// KeyAction maps a key name to its action, or ActionNone.
func KeyAction(key string) Action {
	return keyActions[key]
}

// InputFrame is the set of actions held during one tick. The zero value is
// an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as held. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy. Frames are plain values, so this is the same as
// assignment.
func (f InputFrame) Clone() InputFrame {
	return f
}

// String lists the held actions, e.g. "Left+Fire".
func (f InputFrame) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}
