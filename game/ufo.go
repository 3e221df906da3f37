package game

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/debris-field/audio"
	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/vmath"
)

// Ufo crosses the field diagonally with a horizontal wobble and fires lasers
// at where its path will cross the ship
type Ufo struct {
	engine.EntityBase
	g *Game

	color     engine.Color
	lastFired time.Duration
	lastCue   time.Duration
}

// NewUfo takes only the signs of direction; its speed is fixed
func NewUfo(g *Game, position, direction vmath.Vec2, color engine.Color) *Ufo {
	log.Printf("ufo: spawned at (%.0f,%.0f)", position.X, position.Y)
	return &Ufo{
		EntityBase: engine.NewEntityBase(engine.KindUfo, &physics.Body{
			Mass:       constant.UfoMass,
			Position:   position,
			Velocity:   vmath.V(signedSpeed(direction.X, constant.UfoSpeed), signedSpeed(direction.Y, constant.UfoSpeed)),
			Attraction: physics.AttractTo(),
			Shape:      physics.Circle{Radius: constant.UfoRadius},
		}),
		g:         g,
		color:     color,
		lastFired: g.now,
		lastCue:   g.now,
	}
}

// signedSpeed returns -speed for negative v, speed otherwise
func signedSpeed(v, speed float64) float64 {
	if v < 0 {
		return -speed
	}
	return speed
}

func (u *Ufo) Update(now time.Duration) {
	b := u.Body
	b.Position.X += wobble(now)

	w, h := u.g.Size()
	if physics.Escaping(b, w, h, physics.OutlineMargin(b.Shape)) {
		u.Finish()
	}
	if !u.Finished() {
		u.g.react(u, now)
	}

	if !u.Finished() && now-u.lastFired > constant.UfoFireInterval {
		if ship := u.g.ship(); ship != nil {
			if dir, ok := aim(b, ship.Body); ok {
				u.lastFired = now
				offset := constant.UfoMuzzleOffset
				if b.Position.X > ship.Body.Position.X {
					offset = -offset
				}
				u.g.play(audio.CueLaser)
				u.g.spawn(NewLaser(u.g, vmath.V(b.Position.X+offset, b.Position.Y), dir))
			}
		}
	}

	if now-u.lastCue > constant.UfoCueInterval {
		u.lastCue = now
		u.g.play(audio.CueUfo)
	}
}

// wobble is the horizontal displacement applied each tick
func wobble(now time.Duration) float64 {
	ms := float64(now) / float64(time.Millisecond)
	return math.Sin(ms/20/math.Pi) / 2
}

// aim predicts where the UFO's path crosses the line through the ship
// perpendicular to that path and returns a firing direction toward the ship
// when the crossing is close to either of them
func aim(ufo, ship *physics.Body) (vmath.Vec2, bool) {
	p, v, s := ufo.Position, ufo.Velocity, ship.Position
	x := vmath.LineIntersection(p, p.Add(v), s, s.Add(vmath.V(v.Y, -v.X)))
	if !x.OK {
		return vmath.Vec2{}, false
	}
	if vmath.Dist(x.Point, p) >= constant.UfoAimRange && vmath.Dist(x.Point, s) >= constant.UfoAimTolerance {
		return vmath.Vec2{}, false
	}
	dir := vmath.V(-1, -1)
	if p.X < s.X {
		dir.X = 1
	}
	if p.Y < s.Y {
		dir.Y = 1
	}
	return dir, true
}

func (u *Ufo) Render(c engine.Canvas, now time.Duration) {
	c.Draw(engine.Visual{
		Kind:     engine.KindUfo,
		Position: u.Body.Position,
		Velocity: u.Body.Velocity,
		Shape:    u.Body.Shape,
		Color:    u.color,
	})
}
