package physics

import "github.com/lixenwraith/debris-field/vmath"

// Intersects reports whether the shapes of a and b overlap at their current positions
// Bodies without a shape never collide
func Intersects(a, b *Body) bool {
	switch sa := a.Shape.(type) {
	case Circle:
		switch sb := b.Shape.(type) {
		case Circle:
			return vmath.CircleCircle(a.Position, sa.Radius, b.Position, sb.Radius)
		case Ellipse:
			return vmath.EllipseCircle(b.Position, sb.H, sb.V, a.Position, sa.Radius)
		}
	case Ellipse:
		switch sb := b.Shape.(type) {
		case Circle:
			return vmath.EllipseCircle(a.Position, sa.H, sa.V, b.Position, sb.Radius)
		case Ellipse:
			return vmath.EllipseEllipse(a.Position, sa.H, sa.V, b.Position, sb.H, sb.V)
		}
	}
	return false
}
