package vmath

import "math"

// Ellipse intersection tests for axis-aligned ellipses
// Both tests fold the problem into the first quadrant of the ellipse, try four
// cheap sufficient conditions, then fall back to refining a polygon inscribed
// in the ellipse boundary when the circle sits near the corner region

// MaxRefineIterations bounds polygon refinement; exhaustion resolves to no collision
const MaxRefineIterations = 10

// innerPolygonCoef[t] maps the two corners of a 4<<t sided polygon to the
// midpoint on the boundary; outerPolygonCoef[t] does the same for the
// circumscribed polygon
var innerPolygonCoef, outerPolygonCoef = polygonCoefficients()

func polygonCoefficients() (inner, outer [MaxRefineIterations + 1]float64) {
	for t := 0; t <= MaxRefineIterations; t++ {
		nodes := float64(int(4) << t)
		inner[t] = 0.5 / math.Cos(2*math.Pi/nodes)
		c := math.Cos(math.Pi / nodes)
		outer[t] = 0.5 / (c * c)
	}
	return inner, outer
}

// EllipseCircle reports whether an ellipse with horizontal radius w and
// vertical radius h centred at ec intersects a circle of radius r at cc
func EllipseCircle(ec Vec2, w, h float64, cc Vec2, r float64) bool {
	x := math.Abs(cc.X - ec.X)
	y := math.Abs(cc.Y - ec.Y)
	return quadrantHit(x, y, w, h, r)
}

// EllipseEllipse reports whether ellipse (w0, h0) at c0 intersects ellipse (w1, h1) at c1
// The second ellipse is scaled into a circle of radius w1*h1
func EllipseEllipse(c0 Vec2, w0, h0 float64, c1 Vec2, w1, h1 float64) bool {
	x := math.Abs(c1.X-c0.X) * h1
	y := math.Abs(c1.Y-c0.Y) * w1
	return quadrantHit(x, y, w0*h1, h0*w1, w1*h1)
}

// quadrantHit tests a circle of radius r at (x, y), x,y >= 0, against the ellipse (w, h) at origin
func quadrantHit(x, y, w, h, r float64) bool {
	rr := r * r
	edge := x*h + y*w - w*h
	along := x*w - y*h

	if x*x+(h-y)*(h-y) <= rr || // top vertex inside circle
		(w-x)*(w-x)+y*y <= rr || // side vertex inside circle
		x*h+y*w <= w*h || // centre inside the inscribed diamond
		(edge*edge <= rr*(w*w+h*h) && along >= -h*h && along <= w*w) { // circle crosses the diamond edge
		return true
	}

	if (x-w)*(x-w)+(y-h)*(y-h) <= rr || (x <= w && y-r <= h) || (y <= h && x-r <= w) {
		hit, _ := refine(x, y, w, 0, 0, h, rr)
		return hit
	}
	return false
}

// refine narrows the boundary wedge between corners c0 and c2 until the
// point (x, y) with squared tolerance rr is definitely in or out
// Returns the verdict and the iteration it was reached at
func refine(x, y, c0x, c0y, c2x, c2y, rr float64) (bool, int) {
	for t := 1; t <= MaxRefineIterations; t++ {
		c1x := (c0x + c2x) * innerPolygonCoef[t]
		c1y := (c0y + c2y) * innerPolygonCoef[t]
		tx := x - c1x
		ty := y - c1y
		if tx*tx+ty*ty <= rr {
			return true, t
		}

		t2x := c2x - c1x
		t2y := c2y - c1y
		dot2 := tx*t2x + ty*t2y
		len2 := t2x*t2x + t2y*t2y
		cross2 := ty*t2x - tx*t2y
		if dot2 >= 0 && dot2 <= len2 && (cross2 >= 0 || rr*len2 >= cross2*cross2) {
			return true, t
		}

		t0x := c0x - c1x
		t0y := c0y - c1y
		dot0 := tx*t0x + ty*t0y
		len0 := t0x*t0x + t0y*t0y
		cross0 := ty*t0x - tx*t0y
		if dot0 >= 0 && dot0 <= len0 && (cross0 <= 0 || rr*len0 >= cross0*cross0) {
			return true, t
		}

		c3x := (c0x + c1x) * outerPolygonCoef[t]
		c3y := (c0y + c1y) * outerPolygonCoef[t]
		if (c3x-x)*(c3x-x)+(c3y-y)*(c3y-y) < rr {
			c2x, c2y = c1x, c1y
			continue
		}

		c4x := c1x - c3x + c1x
		c4y := c1y - c3y + c1y
		if (c4x-x)*(c4x-x)+(c4y-y)*(c4y-y) < rr {
			c0x, c0y = c1x, c1y
			continue
		}

		t3x := c3x - c1x
		t3y := c3y - c1y
		dot3 := tx*t3x + ty*t3y
		len3 := t3x*t3x + t3y*t3y
		cross3 := ty*t3x - tx*t3y
		if cross3 <= 0 || rr*len3 > cross3*cross3 {
			if dot3 > 0 {
				if math.Abs(dot3) <= len3 || (x-c3x)*(c0x-c3x)+(y-c3y)*(c0y-c3y) >= 0 {
					c2x, c2y = c1x, c1y
					continue
				}
			} else if -dot3 <= len3 || (x-c4x)*(c2x-c4x)+(y-c4y)*(c2y-c4y) >= 0 {
				c0x, c0y = c1x, c1y
				continue
			}
		}
		return false, t
	}
	// Out of budget: undecided, reported as no collision
	return false, MaxRefineIterations
}
