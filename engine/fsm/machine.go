package fsm

import "time"

// Machine is a flat finite state machine with time-in-state tracking
// S is the state type, T the context passed to guards and actions
type Machine[S comparable, T any] struct {
	initial   S
	state     S
	enteredAt time.Duration

	transitions map[S][]Transition[S, T]
	onEnter     map[S][]ActionFunc[T]
}

// NewMachine creates a machine resting in initial; call Init to run its enter actions
func NewMachine[S comparable, T any](initial S) *Machine[S, T] {
	return &Machine[S, T]{
		initial:     initial,
		state:       initial,
		transitions: make(map[S][]Transition[S, T]),
		onEnter:     make(map[S][]ActionFunc[T]),
	}
}

// AddTransition registers a transition from source, evaluated in registration order
func (m *Machine[S, T]) AddTransition(source S, t Transition[S, T]) *Machine[S, T] {
	m.transitions[source] = append(m.transitions[source], t)
	return m
}

// OnEnter registers an action run whenever s is entered
func (m *Machine[S, T]) OnEnter(s S, fn ActionFunc[T]) *Machine[S, T] {
	m.onEnter[s] = append(m.onEnter[s], fn)
	return m
}

// Init enters the initial state at now
func (m *Machine[S, T]) Init(ctx T, now time.Duration) {
	m.state = m.initial
	m.enteredAt = now
	for _, fn := range m.onEnter[m.state] {
		fn(ctx, now)
	}
}

// State returns the active state
func (m *Machine[S, T]) State() S {
	return m.state
}

// Is reports whether the active state is any of states
func (m *Machine[S, T]) Is(states ...S) bool {
	for _, s := range states {
		if m.state == s {
			return true
		}
	}
	return false
}

// Elapsed returns time spent in the active state
func (m *Machine[S, T]) Elapsed(now time.Duration) time.Duration {
	return now - m.enteredAt
}

// Update fires the first tick transition whose guard passes
func (m *Machine[S, T]) Update(ctx T, now time.Duration) bool {
	return m.handle(ctx, EventTick, now)
}

// Handle routes an event; returns true if a transition fired
func (m *Machine[S, T]) Handle(ctx T, ev Event, now time.Duration) bool {
	if ev == EventTick {
		return false
	}
	return m.handle(ctx, ev, now)
}

func (m *Machine[S, T]) match(ctx T, ev Event, now time.Duration) (Transition[S, T], bool) {
	elapsed := m.Elapsed(now)
	for _, t := range m.transitions[m.state] {
		if t.Event == ev && (t.Guard == nil || t.Guard(ctx, elapsed)) {
			return t, true
		}
	}
	return Transition[S, T]{}, false
}

func (m *Machine[S, T]) handle(ctx T, ev Event, now time.Duration) bool {
	t, ok := m.match(ctx, ev, now)
	if !ok {
		return false
	}
	m.transition(ctx, t, now)
	return true
}

// transition runs the action then the target's enter hooks; re-entering the same state restarts its timer
func (m *Machine[S, T]) transition(ctx T, t Transition[S, T], now time.Duration) {
	if t.Action != nil {
		t.Action(ctx, now)
	}
	m.state = t.Target
	m.enteredAt = now
	for _, fn := range m.onEnter[m.state] {
		fn(ctx, now)
	}
}
