package vmath

import "math"

// Vec2 is a point or displacement in logical field units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by f
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns Euclidean magnitude
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsFinite reports whether neither component is NaN or infinite
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist returns the Euclidean distance between two points
func Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
