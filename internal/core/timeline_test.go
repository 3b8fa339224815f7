package core

import "testing"

func TestTimelineDueOrder(t *testing.T) {
	var tl Timeline[string]
	tl.Schedule(10, "b")
	tl.Schedule(5, "a")
	tl.Schedule(10, "c")
	tl.Schedule(20, "d")

	if got := tl.Due(4); got != nil {
		t.Errorf("Due(4) = %v, expected nothing", got)
	}

	got := tl.Due(10)
	expected := []string{"a", "b", "c"}
	if len(got) != len(expected) {
		t.Fatalf("Due(10) = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Due(10)[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}

	if tl.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", tl.Len())
	}
	if got := tl.Due(10); got != nil {
		t.Errorf("Due should not return an event twice, got %v", got)
	}
}

func TestTimelineClear(t *testing.T) {
	var tl Timeline[int]
	tl.Schedule(1, 1)
	tl.Schedule(2, 2)
	tl.Clear()

	if tl.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", tl.Len())
	}
	if got := tl.Due(100); got != nil {
		t.Errorf("cleared events fired: %v", got)
	}
}
