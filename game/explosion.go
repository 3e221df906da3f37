package game

import (
	"time"

	"github.com/lixenwraith/debris-field/audio"
	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/vmath"
)

// Explosion is a bodiless, self-expiring burst of pieces flying outward
type Explosion struct {
	engine.EntityBase
	g *Game

	position vmath.Vec2
	start    time.Duration
	duration time.Duration
	color    engine.Color
	pieces   []vmath.Vec2 // unit-box directions
}

// explosionPreset parameterises newExplosion
type explosionPreset struct {
	color    engine.Color
	pieces   int
	duration time.Duration
	cue      audio.Cue
	bullets  bool
}

func newExplosion(g *Game, position vmath.Vec2, preset explosionPreset) *Explosion {
	e := &Explosion{
		EntityBase: engine.NewEntityBase(engine.KindExplosion, nil),
		g:          g,
		position:   position,
		start:      g.now,
		duration:   preset.duration,
		color:      preset.color,
		pieces:     make([]vmath.Vec2, preset.pieces),
	}
	for i := range e.pieces {
		e.pieces[i] = vmath.V(g.rng.Float64()*2-1, g.rng.Float64()*2-1)
	}
	if preset.bullets {
		for i := range constant.ExplosionBullets {
			dir := vmath.Rotate(vmath.Vec2{}, vmath.V(0, -1), float64(i)*120+180)
			g.spawn(NewBullet(g, position, dir))
		}
	}
	g.play(preset.cue)
	return e
}

// NewBlast is the full white explosion that also sprays three bullets
func NewBlast(g *Game, position vmath.Vec2) *Explosion {
	return newExplosion(g, position, explosionPreset{
		color:    engine.ColorWhite,
		pieces:   constant.ExplosionPieces,
		duration: constant.ExplosionDuration,
		cue:      audio.CueExplosion,
		bullets:  true,
	})
}

// NewImpact is the small burst left when something is rammed
func NewImpact(g *Game, position vmath.Vec2, color engine.Color) *Explosion {
	return newExplosion(g, position, explosionPreset{
		color:    color,
		pieces:   constant.ImpactPieces,
		duration: constant.ImpactDuration,
		cue:      audio.CueCollision,
	})
}

// NewShipExplosion is the blast without bullets that loops over a dying ship
func NewShipExplosion(g *Game, position vmath.Vec2) *Explosion {
	return newExplosion(g, position, explosionPreset{
		color:    engine.ColorWhite,
		pieces:   constant.ExplosionPieces,
		duration: constant.ExplosionDuration,
		cue:      audio.CueExplosion,
	})
}

func (e *Explosion) Update(now time.Duration) {
	if now-e.start > e.duration {
		e.Finish()
	}
}

// Offsets returns piece positions relative to the centre at now
func (e *Explosion) Offsets(now time.Duration) []vmath.Vec2 {
	// No pieces on the creation tick; they spread from the following tick
	if now <= e.start {
		return nil
	}
	spread := float64(now-e.start) / float64(constant.ExplosionPieceStep)
	out := make([]vmath.Vec2, len(e.pieces))
	for i, p := range e.pieces {
		out[i] = vmath.V(p.X*spread-constant.ExplosionPieceOffset, p.Y*spread-constant.ExplosionPieceOffset)
	}
	return out
}

func (e *Explosion) Render(c engine.Canvas, now time.Duration) {
	pieces := e.Offsets(now)
	if pieces == nil {
		return
	}
	c.Draw(engine.Visual{
		Kind:     engine.KindExplosion,
		Position: e.position,
		Color:    e.color,
		Pieces:   pieces,
		Fade:     min(float64(now-e.start)/float64(e.duration), 1),
	})
}
