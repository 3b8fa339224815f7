package core

import "testing"

func TestKeyAction(t *testing.T) {
	tests := map[string]Action{
		"up":         ActionUp,
		"ArrowUp":    ActionUp,
		"a":          ActionLeft,
		"ArrowRight": ActionRight,
		" ":          ActionFire,
		"Escape":     ActionBack,
		"esc":        ActionBack,
		"r":          ActionRestart,
		"p":          ActionPause,
		"ctrl+c":     ActionQuit,
		"Enter":      ActionConfirm,
		"x":          ActionNone,
		"":           ActionNone,
	}
	for key, want := range tests {
		if got := KeyAction(key); got != want {
			t.Errorf("KeyAction(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionLeft) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionFire)
	f.Set(ActionNone)
	f.Set(Action(200))
	if !f.Has(ActionLeft) || !f.Has(ActionFire) || f.Has(ActionRight) {
		t.Errorf("frame = %v, want Left+Fire", f)
	}
	if f.Has(ActionNone) || f.Has(Action(200)) {
		t.Error("None and out-of-range actions are never held")
	}
	if got := f.String(); got != "Left+Fire" {
		t.Errorf("String() = %q, want Left+Fire", got)
	}

	c := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !c.Has(ActionLeft) {
		t.Error("Clone must not share state with the original")
	}
	if f.String() != "None" {
		t.Errorf("empty String() = %q, want None", f.String())
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" || ActionFire.String() != "Fire" {
		t.Errorf("names = %s %s", ActionPause, ActionFire)
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99) = %s, want Unknown", Action(99))
	}
}
