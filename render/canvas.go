package render

import (
	"math"

	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/game"
	"github.com/lixenwraith/debris-field/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Ship hull geometry in logical units
const (
	hullHalfWidth = 20.0
	hullStep      = 5.0
)

// Ship states as carried in Visual.State
var (
	stateExploding = game.ShipExploding.String()
	stateDepleted  = game.ShipDepleted.String()
	stateCharging  = game.ShipCharging.String()
)

// HUD placement in logical units, from the bottom-left corner
const (
	hudLeft   = 50.0
	hudBottom = 50.0
)

// Draw renders one visual; it never mutates simulation state
func (t *Terminal) Draw(v engine.Visual) {
	switch v.Kind {
	case engine.KindShip:
		t.drawShip(v)
	case engine.KindDebris:
		t.drawDebris(v)
	case engine.KindUfo:
		t.drawUfo(v)
	case engine.KindBullet:
		t.plot(v.Position, '•', t.style(v.Color))
	case engine.KindLaser:
		t.drawLaser(v)
	case engine.KindExplosion:
		t.drawExplosion(v)
	case engine.KindHud:
		t.drawHud(v)
	}
}

func (t *Terminal) drawShip(v engine.Visual) {
	hull := Lookup(v.Color)
	hullStyle := t.styleOf(toTcell(hull))
	windowStyle := t.styleOf(toTcell(dim(hull, 0.8)))

	t.plot(v.Position.Add(vmath.V(0, -5)), '▲', hullStyle)
	for i := range 8 {
		p := v.Position.Add(vmath.V(-hullHalfWidth+float64(i)*hullStep, 4))
		style := hullStyle
		if i == v.Frame {
			style = windowStyle
		}
		t.plot(p, '▀', style)
	}

	if v.State == stateExploding {
		return
	}
	p := vmath.Rotate(vmath.Vec2{}, vmath.V(0, constant.ShipShieldDiameter), v.Angle)
	for i := range constant.ShipShieldElements {
		p = vmath.Rotate(vmath.Vec2{}, p, 360.0/constant.ShipShieldElements)
		if v.State == stateDepleted && (i != 0 || v.Ammo == 0) {
			continue
		}
		at := v.Position.Add(vmath.V(p.X, p.Y/constant.ShipShieldEllipseFactor))
		t.plot(at, '■', t.styleOf(toTcell(shieldColor(v, i))))
	}
}

// shieldColor shades element i: the gun is white, uncharged elements gray,
// and the sweeping dimmed element stands out from the rest
func shieldColor(v engine.Visual, i int) colorful.Color {
	if i == 0 {
		return Lookup(engine.ColorWhite)
	}
	uncharged := v.State == stateCharging && float64(constant.ShipShieldElements-i)*(constant.ShipFullCharge/constant.ShipShieldElements) > v.Charge
	if uncharged {
		c := Lookup(engine.ColorGray)
		if i == v.Dimmed {
			return dim(c, 0.7)
		}
		return c
	}
	c := Lookup(engine.ColorShield)
	if i == v.Dimmed {
		return c
	}
	return dim(c, 0.2)
}

// drawDebris draws a spinning cross: the centre plus four arm tips
func (t *Terminal) drawDebris(v engine.Visual) {
	style := t.style(v.Color)
	for i := range 4 {
		tip := vmath.Rotate(vmath.Vec2{}, vmath.V(0, 12.5), v.Angle+float64(i)*90)
		t.plot(v.Position.Add(tip), '·', style)
	}
	t.plot(v.Position, crossGlyph(v.Angle), style)
}

// crossGlyph picks the glyph closest to the cross's rotation
func crossGlyph(angle float64) rune {
	a := math.Mod(angle, 90)
	if a < 0 {
		a += 90
	}
	if a < 22.5 || a >= 67.5 {
		return '+'
	}
	return '×'
}

func (t *Terminal) drawUfo(v engine.Visual) {
	style := t.style(v.Color)
	x, y, ok := t.Cell(v.Position)
	if !ok {
		return
	}
	t.text(max(x-1, 0), y, "<=>", style)
}

// drawLaser draws six segments trailing along the direction of travel
func (t *Terminal) drawLaser(v engine.Visual) {
	dx, dy := vmath.Sign(v.Velocity.X), vmath.Sign(v.Velocity.Y)
	r := '/'
	if dx == dy {
		r = '\\'
	}
	style := t.style(v.Color)
	for i := range 6 {
		t.plot(v.Position.Add(vmath.V(5*float64(i)*dx, 5*float64(i)*dy)), r, style)
	}
}

func (t *Terminal) drawExplosion(v engine.Visual) {
	style := t.styleOf(toTcell(fade(Lookup(v.Color), v.Fade)))
	for _, p := range v.Pieces {
		t.plot(v.Position.Add(p), '*', style)
	}
}

// drawHud writes the score line, hiding the character at v.Blank
func (t *Terminal) drawHud(v engine.Visual) {
	x, y, ok := t.Cell(vmath.V(hudLeft, t.fieldH-hudBottom))
	if !ok {
		return
	}
	style := t.style(v.Color)
	runes := []rune(v.Text)
	if v.Blank >= 0 && v.Blank < len(runes) {
		runes[v.Blank] = ' '
	}
	t.text(x, y, string(runes), style)
}

var _ engine.Canvas = (*Terminal)(nil)
