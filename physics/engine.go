package physics

import (
	"math"
	"time"
)

const (
	// DefaultG is the gravitational constant tuned for the arcade field
	DefaultG = 1.75
	// DefaultSoftening bounds the force as separation approaches zero
	DefaultSoftening = 0.15
	// TimeUnit is the simulation step unit; dt = elapsed / TimeUnit
	TimeUnit = 100 * time.Millisecond
)

// Engine integrates motion and detects collisions for a slice of bodies
// Nil entries are bodiless entities: skipped by both passes
type Engine struct {
	G         float64
	Softening float64
}

// NewEngine returns an engine with the default constants
func NewEngine() *Engine {
	return &Engine{G: DefaultG, Softening: DefaultSoftening}
}

// DeltaUnits converts elapsed game time to simulation units
func DeltaUnits(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(TimeUnit)
}

// Step runs Integrate then Collisions and returns the collision sets
func (e *Engine) Step(bodies []*Body, dt float64) [][]int {
	e.Integrate(bodies, dt)
	return e.Collisions(bodies)
}

// Integrate advances every body whose attraction is not None with explicit Euler
// using last tick's acceleration, then recomputes its acceleration from the
// bodies it is attracted to. Bodies are processed in order, so later bodies
// see the already advanced positions of earlier ones.
func (e *Engine) Integrate(bodies []*Body, dt float64) {
	for i, b := range bodies {
		if b == nil || b.Attraction.None() {
			continue
		}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))

		var ax, ay float64
		for j, o := range bodies {
			if j == i || o == nil || !b.Attraction.Matches(o.Kind) {
				continue
			}
			dx := o.Position.X - b.Position.X
			dy := o.Position.Y - b.Position.Y
			distSq := dx*dx + dy*dy
			if distSq == 0 {
				// Coincident centres have no direction
				continue
			}
			f := e.Force(o.Mass, distSq)
			ax += dx * f
			ay += dy * f
		}
		b.Acceleration.X = ax
		b.Acceleration.Y = ay
	}
}

// Force returns the per-unit-separation pull g*mass / (d² * sqrt(d² + softening))
func (e *Engine) Force(mass, distSq float64) float64 {
	return e.G * mass / (distSq * math.Sqrt(distSq+e.Softening))
}

// Collisions returns, for every index, the other indices whose shapes intersect it
// Each ordered pair is tested independently
func (e *Engine) Collisions(bodies []*Body) [][]int {
	sets := make([][]int, len(bodies))
	for i, a := range bodies {
		if a == nil {
			continue
		}
		for j, b := range bodies {
			if i == j || b == nil {
				continue
			}
			if Intersects(a, b) {
				sets[i] = append(sets[i], j)
			}
		}
	}
	return sets
}
