package game

import (
	"math"
	"time"

	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/vmath"
)

// Debris drifts through the field pulled by other debris
// After absorbing another piece it turns magnetic and homes on the ship
type Debris struct {
	engine.EntityBase
	g *Game

	color       engine.Color
	spin        float64 // degrees per second
	angle       float64
	magnetic    bool
	lastUpdated time.Duration
}

func NewDebris(g *Game, position, velocity vmath.Vec2, color engine.Color) *Debris {
	return &Debris{
		EntityBase: engine.NewEntityBase(engine.KindDebris, &physics.Body{
			Mass:       constant.DebrisMass,
			Position:   position,
			Velocity:   velocity,
			Attraction: physics.AttractTo(engine.KindDebris),
			Shape:      physics.Circle{Radius: constant.DebrisRadius},
		}),
		g:           g,
		color:       color,
		spin:        constant.DebrisSpin,
		lastUpdated: g.now,
	}
}

// Magnetic reports whether the debris has absorbed another piece
func (d *Debris) Magnetic() bool { return d.magnetic }

func (d *Debris) magnetize() {
	d.magnetic = true
	d.spin = constant.DebrisMagneticSpin
	d.Body.Attraction = physics.AttractTo(engine.KindShip)
}

func (d *Debris) Update(now time.Duration) {
	b := d.Body
	elapsed := (now - d.lastUpdated).Seconds()
	accel := (math.Abs(b.Acceleration.X) + math.Abs(b.Acceleration.Y)) / 2 * constant.DebrisSpinAccelGain
	d.angle = math.Mod(d.angle+d.spin*elapsed*(1+accel), 360)

	w, h := d.g.Size()
	if physics.Escaping(b, w, h, physics.OutlineMargin(b.Shape)) {
		d.Finish()
	}
	if !d.Finished() {
		d.g.react(d, now)
	}
	d.lastUpdated = now
}

func (d *Debris) Render(c engine.Canvas, now time.Duration) {
	c.Draw(engine.Visual{
		Kind:     engine.KindDebris,
		Position: d.Body.Position,
		Velocity: d.Body.Velocity,
		Shape:    d.Body.Shape,
		Color:    d.color,
		Angle:    d.angle,
	})
}
