package physics

import "github.com/lixenwraith/debris-field/vmath"

// Kind tags the entity type owning a body
// Only attraction policies inspect it
type Kind uint8

// Body is the physical state owned by a single entity
type Body struct {
	Kind         Kind
	Mass         float64
	Position     vmath.Vec2
	Velocity     vmath.Vec2
	Acceleration vmath.Vec2
	Attraction   Attraction
	Shape        Shape
}

type attractionMode uint8

const (
	attractAll attractionMode = iota
	attractNone
	attractSet
)

// Attraction selects which other bodies pull on a body
// The relation is one-way: A attracted to B says nothing about B
type Attraction struct {
	mode  attractionMode
	kinds uint64
}

// AttractAll is pulled by every other body
func AttractAll() Attraction { return Attraction{mode: attractAll} }

// AttractNone opts the body out of integration and gravity entirely
func AttractNone() Attraction { return Attraction{mode: attractNone} }

// AttractTo is pulled only by bodies of the given kinds
// With no kinds the body still integrates but feels no pull
func AttractTo(kinds ...Kind) Attraction {
	a := Attraction{mode: attractSet}
	for _, k := range kinds {
		a.kinds |= 1 << (k & 63)
	}
	return a
}

// None reports whether the body is excluded from integration
func (a Attraction) None() bool { return a.mode == attractNone }

// Matches reports whether a body of kind k pulls on this body
func (a Attraction) Matches(k Kind) bool {
	switch a.mode {
	case attractAll:
		return true
	case attractSet:
		return a.kinds&(1<<(k&63)) != 0
	}
	return false
}
