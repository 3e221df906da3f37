package physics

import "github.com/lixenwraith/debris-field/vmath"

// ClampToBounds pins the body position inside [0,w]x[0,h]
// Returns true if the position was changed
func ClampToBounds(b *Body, w, h float64) bool {
	p := vmath.V(vmath.Clamp(b.Position.X, 0, w), vmath.Clamp(b.Position.Y, 0, h))
	if p == b.Position {
		return false
	}
	b.Position = p
	return true
}

// Escaping reports whether the body is outside the field expanded by margin
// on some axis and still moving further out on that axis
func Escaping(b *Body, w, h, margin float64) bool {
	p, v := b.Position, b.Velocity
	return (p.X < -margin && v.X < 0) ||
		(p.Y < -margin && v.Y < 0) ||
		(p.X > w+margin && v.X > 0) ||
		(p.Y > h+margin && v.Y > 0)
}

// OutlineMargin returns four times the circle radius, zero for other shapes
func OutlineMargin(s Shape) float64 {
	if c, ok := s.(Circle); ok {
		return c.Radius * 4
	}
	return 0
}
