package vmath

import (
	"math"
	"testing"
)

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		name   string
		c0     Vec2
		r0     float64
		c1     Vec2
		r1     float64
		expect bool
	}{
		{"overlapping", V(0, 0), 5, V(8, 0), 4, true},
		{"apart", V(0, 0), 5, V(11, 0), 4, false},
		{"touching", V(0, 0), 5, V(9, 0), 4, true},
		{"same centre", V(3, 3), 1, V(3, 3), 1, true},
		{"diagonal apart", V(0, 0), 1, V(3, 4), 3.9, false},
		{"diagonal touching", V(0, 0), 1, V(3, 4), 4, true},
		{"zero radii same point", V(1, 1), 0, V(1, 1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleCircle(tt.c0, tt.r0, tt.c1, tt.r1); got != tt.expect {
				t.Errorf("CircleCircle(%v, %v, %v, %v) = %v, want %v", tt.c0, tt.r0, tt.c1, tt.r1, got, tt.expect)
			}
			// Symmetric by construction
			if got := CircleCircle(tt.c1, tt.r1, tt.c0, tt.r0); got != tt.expect {
				t.Errorf("swapped CircleCircle = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestLineIntersection(t *testing.T) {
	t.Run("crossing segments", func(t *testing.T) {
		res := LineIntersection(V(0, 0), V(10, 10), V(0, 10), V(10, 0))
		if !res.OK {
			t.Fatal("expected intersection")
		}
		if math.Abs(res.Point.X-5) > 1e-9 || math.Abs(res.Point.Y-5) > 1e-9 {
			t.Errorf("point = %v, want (5,5)", res.Point)
		}
		if !res.OnLine1 || !res.OnLine2 {
			t.Errorf("expected point on both segments, got %v/%v", res.OnLine1, res.OnLine2)
		}
	})

	t.Run("parallel", func(t *testing.T) {
		res := LineIntersection(V(0, 0), V(10, 0), V(0, 5), V(10, 5))
		if res.OK {
			t.Errorf("parallel lines reported intersection at %v", res.Point)
		}
		if res.OnLine1 || res.OnLine2 {
			t.Error("parallel lines must not report segment membership")
		}
	})

	t.Run("outside first segment", func(t *testing.T) {
		res := LineIntersection(V(0, 0), V(1, 0), V(5, -5), V(5, 5))
		if !res.OK {
			t.Fatal("expected intersection")
		}
		if res.Point != V(5, 0) {
			t.Errorf("point = %v, want (5,0)", res.Point)
		}
		if res.OnLine1 {
			t.Error("point beyond segment end reported on line 1")
		}
		if !res.OnLine2 {
			t.Error("point inside second segment not reported on line 2")
		}
	})

	t.Run("endpoint is exclusive", func(t *testing.T) {
		res := LineIntersection(V(0, 0), V(10, 0), V(10, -5), V(10, 5))
		if !res.OK {
			t.Fatal("expected intersection")
		}
		if res.OnLine1 {
			t.Error("intersection at segment end must not count as on line 1")
		}
	})
}
