package input

import "github.com/lixenwraith/debris-field/vmath"

// State is the input snapshot consumed once per tick
type State struct {
	Direction vmath.Vec2 // components in {-1, 0, 1}
	Fire      bool
	Typed     []rune // alphanumerics typed since the previous poll
}

// Source supplies input snapshots
// Poll drains typed characters; direction and fire reflect what is held now
type Source interface {
	Poll() State
}

// Static is a Source returning a fixed state; Typed is delivered once
type Static struct {
	State State
}

func (s *Static) Poll() State {
	st := s.State
	s.State.Typed = nil
	return st
}
