package game

import (
	"math"
	"time"

	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/vmath"
)

// Spawner feeds the field with debris, and now and then a UFO, from just
// outside its border
type Spawner struct {
	engine.EntityBase
	g *Game

	next time.Duration
	ufo  *Ufo
}

func NewSpawner(g *Game) *Spawner {
	return &Spawner{
		EntityBase: engine.NewEntityBase(engine.KindSpawner, nil),
		g:          g,
		next:       g.now,
	}
}

func (s *Spawner) Update(now time.Duration) {
	if now < s.next {
		return
	}
	g := s.g
	s.next = now + constant.SpawnMinInterval + time.Duration(g.rng.Float64()*float64(constant.SpawnRandomInterval))

	start := s.borderPoint()
	dir := s.direction(start)
	if g.rng.IntN(constant.SpawnUfoOdds) == constant.SpawnUfoFace && (s.ufo == nil || s.ufo.Finished()) {
		s.ufo = NewUfo(g, start, dir, g.color())
		g.spawn(s.ufo)
		return
	}
	g.spawn(NewDebris(g, start, dir, g.color()))
}

// borderPoint picks a uniform point on the border of the field grown by SpawnBorder
func (s *Spawner) borderPoint() vmath.Vec2 {
	d := constant.SpawnBorder
	fw, fh := s.g.Size()
	w, h := fw+2*d, fh+2*d
	pos := math.Floor(s.g.rng.Float64() * (2*w + 2*h))

	var p vmath.Vec2
	switch {
	case pos < w:
		p = vmath.V(pos, 0)
	case pos < w+h:
		p = vmath.V(w, pos-w)
	case pos < 2*w+h:
		p = vmath.V(pos-(w+h), h)
	default:
		p = vmath.V(0, pos-(2*w+h))
	}
	return vmath.V(p.X-d, p.Y-d)
}

// direction aims from start toward another border point, flattening the
// dominant axis; samples until both components are non-zero and finite
func (s *Spawner) direction(start vmath.Vec2) vmath.Vec2 {
	for {
		r := s.borderPoint().Sub(start)
		ax, ay := math.Abs(r.X), math.Abs(r.Y)
		scale := ay / ax
		if ax < ay {
			scale = ax / ay
		}
		r = r.Scale(scale / constant.SpawnDirectionScale)
		if r.X != 0 && r.Y != 0 && r.IsFinite() {
			return r
		}
	}
}

func (s *Spawner) Render(engine.Canvas, time.Duration) {}
