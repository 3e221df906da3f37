package vmath

import (
	"math"
	"testing"
)

func TestPolygonCoefficients(t *testing.T) {
	// 8-gon: corners at 0 and 90 degrees fold onto the 45 degree boundary point
	if math.Abs(innerPolygonCoef[1]-0.5/math.Cos(math.Pi/4)) > 1e-12 {
		t.Errorf("innerPolygonCoef[1] = %v", innerPolygonCoef[1])
	}
	for i := 2; i <= MaxRefineIterations; i++ {
		if innerPolygonCoef[i] >= innerPolygonCoef[i-1] {
			t.Errorf("inner coefficients must shrink toward 0.5, [%d]=%v [%d]=%v", i-1, innerPolygonCoef[i-1], i, innerPolygonCoef[i])
		}
	}
	for i := 1; i <= MaxRefineIterations; i++ {
		if outerPolygonCoef[i] < 0.5 {
			t.Errorf("outer coefficient [%d] = %v below 0.5", i, outerPolygonCoef[i])
		}
	}
}

func TestEllipseCircleFastPaths(t *testing.T) {
	centre := V(100, 100)
	tests := []struct {
		name   string
		circle Vec2
		r      float64
		expect bool
	}{
		{"centre inside", V(100, 100), 1, true},
		{"near top vertex", V(100, 125), 6, true},
		{"near side vertex", V(137, 100), 6, true},
		{"inside diamond", V(110, 105), 1, true},
		{"far away", V(300, 300), 5, false},
		{"beyond side", V(140, 100), 4, false},
		{"beyond top", V(100, 130), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EllipseCircle(centre, 32, 20, tt.circle, tt.r); got != tt.expect {
				t.Errorf("EllipseCircle(.., %v, %v) = %v, want %v", tt.circle, tt.r, got, tt.expect)
			}
		})
	}
}

func TestEllipseCircleNearBoundary(t *testing.T) {
	// Circle outside the diamond near the 45 degree boundary point: all fast
	// paths are inconclusive and the corner gate sends it to refinement
	x, y := 24.0, 15.5
	w, h := 32.0, 20.0

	for _, r := range []float64{1, 3} {
		edge := x*h + y*w - w*h
		if x*x+(h-y)*(h-y) <= r*r || (w-x)*(w-x)+y*y <= r*r || x*h+y*w <= w*h || edge*edge <= r*r*(w*w+h*h) {
			t.Fatalf("r=%v: fixture hits a fast path", r)
		}
	}

	if !EllipseCircle(V(0, 0), w, h, V(x, y), 3) {
		t.Error("circle overlapping the boundary should collide")
	}
	if EllipseCircle(V(0, 0), w, h, V(x, y), 1) {
		t.Error("circle clear of the boundary should not collide")
	}

	// Quadrant folding: mirrored positions give identical answers
	for _, p := range []Vec2{V(-x, y), V(x, -y), V(-x, -y)} {
		if !EllipseCircle(V(0, 0), w, h, p, 3) {
			t.Errorf("mirrored position %v lost the collision", p)
		}
	}
}

func TestRefineTerminatesDeterministically(t *testing.T) {
	cases := []struct{ x, y, r float64 }{
		{24, 15.5, 1},
		{24, 15.5, 3},
		{23.2, 14.6, 0.05},
		{22.7, 14.2, 0.001},
		{31.9, 1.5, 0.2},
		{1.5, 19.95, 0.2},
	}

	for _, c := range cases {
		first, firstIter := refine(c.x, c.y, 32, 0, 0, 20, c.r*c.r)
		if firstIter < 1 || firstIter > MaxRefineIterations {
			t.Errorf("(%v,%v,r=%v): iterations = %d, want 1..%d", c.x, c.y, c.r, firstIter, MaxRefineIterations)
		}
		for i := 0; i < 5; i++ {
			got, iter := refine(c.x, c.y, 32, 0, 0, 20, c.r*c.r)
			if got != first || iter != firstIter {
				t.Fatalf("(%v,%v,r=%v): run %d = (%v,%d), first = (%v,%d)", c.x, c.y, c.r, i, got, iter, first, firstIter)
			}
			if EllipseCircle(V(0, 0), 32, 20, V(c.x, c.y), c.r) != EllipseCircle(V(0, 0), 32, 20, V(c.x, c.y), c.r) {
				t.Fatal("EllipseCircle not deterministic")
			}
		}
	}
}

func TestEllipseEllipse(t *testing.T) {
	tests := []struct {
		name   string
		c1     Vec2
		w1, h1 float64
		expect bool
	}{
		{"same centre", V(0, 0), 32, 20, true},
		{"overlap on x axis", V(60, 0), 32, 20, true},
		{"apart on x axis", V(70, 0), 32, 20, false},
		{"overlap on y axis", V(0, 28), 16, 10, true},
		{"apart on y axis", V(0, 40), 16, 10, false},
		{"far diagonal", V(200, 150), 16, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EllipseEllipse(V(0, 0), 32, 20, tt.c1, tt.w1, tt.h1); got != tt.expect {
				t.Errorf("EllipseEllipse(.., %v, %v, %v) = %v, want %v", tt.c1, tt.w1, tt.h1, got, tt.expect)
			}
		})
	}
}

func TestEllipseEllipseCircularDegenerate(t *testing.T) {
	// Equal radii ellipses are circles; answers must agree with CircleCircle away from the tolerance band
	for _, d := range []float64{0, 5, 10, 19, 21, 30} {
		want := CircleCircle(V(0, 0), 10, V(d, 0), 10)
		if got := EllipseEllipse(V(0, 0), 10, 10, V(d, 0), 10, 10); got != want {
			t.Errorf("d=%v: EllipseEllipse = %v, CircleCircle = %v", d, got, want)
		}
	}
}
