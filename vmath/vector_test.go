package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		c, p   Vec2
		angle  float64
		expect Vec2
	}{
		{"zero angle", V(0, 0), V(3, 4), 0, V(3, 4)},
		{"quarter turn", V(0, 0), V(0, 1), 90, V(1, 0)},
		{"half turn", V(0, 0), V(1, 0), 180, V(-1, 0)},
		{"quarter turn back", V(0, 0), V(1, 0), 90, V(0, -1)},
		{"around offset centre", V(10, 10), V(10, 11), 90, V(11, 10)},
		{"full turn", V(2, 3), V(7, -1), 360, V(7, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.c, tt.p, tt.angle)
			if !near(got, tt.expect) {
				t.Errorf("Rotate(%v, %v, %v) = %v, want %v", tt.c, tt.p, tt.angle, got, tt.expect)
			}
		})
	}
}

func TestRotatePreservesDistance(t *testing.T) {
	c := V(5, -2)
	p := V(12, 9)
	want := Dist(c, p)
	for angle := -720.0; angle <= 720; angle += 37 {
		if got := Dist(c, Rotate(c, p, angle)); math.Abs(got-want) > eps {
			t.Fatalf("angle %v: distance %v, want %v", angle, got, want)
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		pos, dir Vec2
		dist     float64
		expect   Vec2
	}{
		{"unit direction", V(0, 0), V(1, 0), 5, V(5, 0)},
		{"direction is normalized", V(1, 1), V(3, 4), 10, V(7, 9)},
		{"zero direction", V(2, 2), V(0, 0), 10, V(2, 2)},
		{"zero distance", V(2, 2), V(1, 0), 0, V(2, 2)},
		{"negative distance", V(2, 2), V(1, 0), -3, V(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Move(tt.pos, tt.dir, tt.dist); !near(got, tt.expect) {
				t.Errorf("Move(%v, %v, %v) = %v, want %v", tt.pos, tt.dir, tt.dist, got, tt.expect)
			}
		})
	}
}

func TestVecHelpers(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len = %v, want 5", v.Len())
	}
	if v.LenSq() != 25 {
		t.Errorf("LenSq = %v, want 25", v.LenSq())
	}
	if got := v.Normalize(); !near(got, V(0.6, 0.8)) {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("zero Normalize = %v, want zero", got)
	}
	if V(math.NaN(), 0).IsFinite() || V(0, math.Inf(1)).IsFinite() {
		t.Error("IsFinite accepted non-finite vector")
	}
	if !v.IsFinite() {
		t.Error("IsFinite rejected finite vector")
	}
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp out of range")
	}
	if Sign(-2) != -1 || Sign(0) != 0 || Sign(7) != 1 {
		t.Error("Sign mismatch")
	}
}
