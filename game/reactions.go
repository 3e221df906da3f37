package game

import (
	"time"

	"github.com/lixenwraith/debris-field/engine"
)

// reaction applies the effect of self touching other during self's update
type reaction func(g *Game, self, other engine.Entity, now time.Duration)

type kindPair struct {
	self  engine.Kind
	other engine.Kind
}

// reactions lists every collision with an effect; absent pairs are ignored
var reactions = map[kindPair]reaction{
	{engine.KindShip, engine.KindDebris}: shipStruck,
	{engine.KindShip, engine.KindUfo}:    shipStruck,
	{engine.KindShip, engine.KindLaser}:  shipStruck,

	{engine.KindDebris, engine.KindDebris}: debrisMerged,
	{engine.KindDebris, engine.KindBullet}: shotDown,

	{engine.KindUfo, engine.KindDebris}: rammed,
	{engine.KindUfo, engine.KindBullet}: shotDown,

	{engine.KindLaser, engine.KindDebris}: rammed,
	{engine.KindLaser, engine.KindBullet}: shotDown,
}

// react dispatches self's collision set through the reaction table
// Colliders already finished this tick are skipped, and a finished self stops reacting
func (g *Game) react(self engine.Entity, now time.Duration) {
	base := self.Base()
	for _, other := range base.Collisions() {
		if base.Finished() {
			return
		}
		if other.Base().Finished() {
			continue
		}
		if fn, ok := reactions[kindPair{self.Kind(), other.Kind()}]; ok {
			fn(g, self, other, now)
		}
	}
}

func shipStruck(g *Game, self, other engine.Entity, now time.Duration) {
	self.(*Ship).struck(other, now)
}

// debrisMerged absorbs the other debris: it turns magnetic and shares momentum
func debrisMerged(g *Game, self, other engine.Entity, now time.Duration) {
	d := self.(*Debris)
	o := other.(*Debris)
	o.Finish()
	g.spawn(NewImpact(g, o.Body.Position, o.color))
	d.Body.Velocity = d.Body.Velocity.Add(o.Body.Velocity).Scale(0.5)
	d.magnetize()
}

// shotDown destroys self and the bullet, crediting debris and UFOs
func shotDown(g *Game, self, other engine.Entity, now time.Duration) {
	if self.Kind() != engine.KindLaser {
		g.addScore(self)
	}
	other.Base().Finish()
	self.Base().Finish()
	g.spawn(NewBlast(g, self.Base().Body.Position))
}

// rammed destroys self with a small impact in its own colour
func rammed(g *Game, self, other engine.Entity, now time.Duration) {
	self.Base().Finish()
	g.spawn(NewImpact(g, self.Base().Body.Position, colorOf(self)))
}

func colorOf(e engine.Entity) engine.Color {
	switch v := e.(type) {
	case *Debris:
		return v.color
	case *Ufo:
		return v.color
	}
	return engine.ColorWhite
}
