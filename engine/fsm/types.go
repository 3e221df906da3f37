package fsm

import "time"

// Event identifies an external trigger; EventTick marks automatic transitions
type Event uint8

const EventTick Event = 0

// GuardFunc returns true if the transition may fire
// elapsed is the time spent in the current state
type GuardFunc[T any] func(ctx T, elapsed time.Duration) bool

// ActionFunc executes a side effect at the given game time
type ActionFunc[T any] func(ctx T, now time.Duration)

// Transition links two states
type Transition[S comparable, T any] struct {
	Target S
	Event  Event         // EventTick = evaluated on Update
	Guard  GuardFunc[T]  // nil = always true
	Action ActionFunc[T] // runs before the target's enter hooks
}
