package vmath

import "math"

// CircleCircle reports whether two circles overlap; touching counts
func CircleCircle(c0 Vec2, r0 float64, c1 Vec2, r1 float64) bool {
	return math.Hypot(c1.X-c0.X, c1.Y-c0.Y) <= r0+r1
}

// Intersection is the result of intersecting two lines
type Intersection struct {
	Point   Vec2
	OK      bool // false when the lines are parallel
	OnLine1 bool // Point lies strictly inside segment a0-a1
	OnLine2 bool // Point lies strictly inside segment b0-b1
}

// LineIntersection intersects the infinite lines through a0-a1 and b0-b1
func LineIntersection(a0, a1, b0, b1 Vec2) Intersection {
	var res Intersection
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	den := db.Y*da.X - db.X*da.Y
	if den == 0 {
		return res
	}

	oy := a0.Y - b0.Y
	ox := a0.X - b0.X
	ua := (db.X*oy - db.Y*ox) / den
	ub := (da.X*oy - da.Y*ox) / den

	res.OK = true
	res.Point = a0.Add(da.Scale(ua))
	res.OnLine1 = ua > 0 && ua < 1
	res.OnLine2 = ub > 0 && ub < 1
	return res
}
