package vmath

import "math"

// DegToRad converts degrees to radians
const DegToRad = math.Pi / 180

// Rotate turns p around c by angle degrees, counter-clockwise on a y-down screen
func Rotate(c, p Vec2, angle float64) Vec2 {
	rad := angle * DegToRad
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	dx := p.X - c.X
	dy := p.Y - c.Y
	return Vec2{
		X: cos*dx + sin*dy + c.X,
		Y: cos*dy - sin*dx + c.Y,
	}
}

// Move returns position advanced by distance along direction
// A zero direction or non-positive distance leaves position unchanged
func Move(position, direction Vec2, distance float64) Vec2 {
	if direction.IsZero() || distance <= 0 {
		return position
	}
	return position.Add(direction.Normalize().Scale(distance))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
