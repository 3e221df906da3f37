package engine

import (
	"slices"
	"time"
)

// TimerHandle identifies a scheduled callback; zero is never issued
type TimerHandle uint64

type timer struct {
	id  TimerHandle
	due time.Duration
	fn  func()
}

// Timers is a queue of delayed callbacks in game time, drained by the tick loop
// Callbacks run on the caller's goroutine inside Run, never concurrently with a tick
type Timers struct {
	next    TimerHandle
	entries []timer
}

func NewTimers() *Timers {
	return &Timers{}
}

// After schedules fn to run on the first Run at or after now+delay
func (t *Timers) After(now, delay time.Duration, fn func()) TimerHandle {
	t.next++
	t.entries = append(t.entries, timer{id: t.next, due: now + delay, fn: fn})
	return t.next
}

// Cancel removes a pending callback; returns false if it already ran or never existed
func (t *Timers) Cancel(h TimerHandle) bool {
	i := slices.IndexFunc(t.entries, func(e timer) bool { return e.id == h })
	if i < 0 {
		return false
	}
	t.entries = slices.Delete(t.entries, i, i+1)
	return true
}

// Pending reports whether h is still scheduled
func (t *Timers) Pending(h TimerHandle) bool {
	return slices.ContainsFunc(t.entries, func(e timer) bool { return e.id == h })
}

// Len returns the number of scheduled callbacks
func (t *Timers) Len() int {
	return len(t.entries)
}

// Run executes every callback due by now in due order, ties in scheduling order
// Callbacks scheduled during Run wait for the next call
func (t *Timers) Run(now time.Duration) int {
	var due []timer
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.due <= now {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	clear(t.entries[len(kept):])
	t.entries = kept

	slices.SortStableFunc(due, func(a, b timer) int {
		switch {
		case a.due < b.due:
			return -1
		case a.due > b.due:
			return 1
		}
		return 0
	})
	for _, e := range due {
		e.fn()
	}
	return len(due)
}

// Clear drops every pending callback
func (t *Timers) Clear() {
	clear(t.entries)
	t.entries = t.entries[:0]
}
