package core

import (
	"cmp"
	"slices"
)

// Timeline holds deferred game transitions keyed by simulation tick.
// Games schedule an entry ("respawn at tick T") and drain due entries at the
// start of each Step, so the update step stays the only place state changes
// and nothing can fire after a game has been dropped or reset.
type Timeline[E any] struct {
	entries []timelineEntry[E]
}

type timelineEntry[E any] struct {
	at    uint64
	event E
}

// Schedule queues event to fire once the tick counter reaches at.
func (t *Timeline[E]) Schedule(at uint64, event E) {
	t.entries = append(t.entries, timelineEntry[E]{at: at, event: event})
}

// Due removes and returns every event scheduled at or before now, in
// (tick, insertion) order.
func (t *Timeline[E]) Due(now uint64) []E {
	if len(t.entries) == 0 {
		return nil
	}
	slices.SortStableFunc(t.entries, func(a, b timelineEntry[E]) int {
		return cmp.Compare(a.at, b.at)
	})

	n := 0
	for n < len(t.entries) && t.entries[n].at <= now {
		n++
	}
	if n == 0 {
		return nil
	}

	due := make([]E, n)
	for i := range n {
		due[i] = t.entries[i].event
	}
	t.entries = append(t.entries[:0], t.entries[n:]...)
	return due
}

// Len returns the number of queued events.
func (t *Timeline[E]) Len() int {
	return len(t.entries)
}

// Clear drops every queued event.
func (t *Timeline[E]) Clear() {
	t.entries = t.entries[:0]
}
