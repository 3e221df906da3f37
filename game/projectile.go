package game

import (
	"time"

	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/vmath"
)

// Bullet travels in a straight line until it exceeds its range
// It never reacts itself; whatever it hits finishes it
type Bullet struct {
	engine.EntityBase
	g *Game

	start       vmath.Vec2
	direction   vmath.Vec2
	lastUpdated time.Duration
}

func NewBullet(g *Game, position, direction vmath.Vec2) *Bullet {
	return &Bullet{
		EntityBase: engine.NewEntityBase(engine.KindBullet, &physics.Body{
			Mass:       constant.BulletMass,
			Position:   position,
			Attraction: physics.AttractTo(),
			Shape:      physics.Circle{Radius: constant.BulletRadius},
		}),
		g:           g,
		start:       position,
		direction:   direction,
		lastUpdated: g.now,
	}
}

func (b *Bullet) Update(now time.Duration) {
	dist := constant.BulletSpeed * constant.MoveScale * (now - b.lastUpdated).Seconds()
	b.Body.Position = vmath.Move(b.Body.Position, b.direction, dist)
	b.lastUpdated = now
	if vmath.Dist(b.Body.Position, b.start) > constant.BulletRange {
		b.Finish()
	}
}

func (b *Bullet) Render(c engine.Canvas, now time.Duration) {
	c.Draw(engine.Visual{
		Kind:     engine.KindBullet,
		Position: b.Body.Position,
		Velocity: b.direction,
		Shape:    b.Body.Shape,
		Color:    engine.ColorWhite,
	})
}

// Laser is a UFO shot flying diagonally until it leaves the field
type Laser struct {
	engine.EntityBase
	g *Game
}

// NewLaser takes only the signs of direction; its speed is fixed
func NewLaser(g *Game, position, direction vmath.Vec2) *Laser {
	return &Laser{
		EntityBase: engine.NewEntityBase(engine.KindLaser, &physics.Body{
			Mass:       constant.LaserMass,
			Position:   position,
			Velocity:   vmath.V(signedSpeed(direction.X, constant.LaserSpeed), signedSpeed(direction.Y, constant.LaserSpeed)),
			Attraction: physics.AttractTo(),
			Shape:      physics.Circle{Radius: constant.LaserRadius},
		}),
		g: g,
	}
}

func (l *Laser) Update(now time.Duration) {
	w, h := l.g.Size()
	if physics.Escaping(l.Body, w, h, physics.OutlineMargin(l.Body.Shape)) {
		l.Finish()
	}
	if !l.Finished() {
		l.g.react(l, now)
	}
}

func (l *Laser) Render(c engine.Canvas, now time.Duration) {
	c.Draw(engine.Visual{
		Kind:     engine.KindLaser,
		Position: l.Body.Position,
		Velocity: l.Body.Velocity,
		Shape:    l.Body.Shape,
		Color:    engine.ColorWhite,
	})
}
