package engine

import (
	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/vmath"
)

// Color is a logical palette entry; the renderer maps it to terminal colours
type Color uint8

const (
	ColorWhite Color = iota
	ColorGreen
	ColorYellow
	ColorPurple
	ColorMagenta
	ColorCyan
	ColorBlue
	ColorRed
	ColorOrange
	ColorGray
	ColorShield
	ColorBlack
)

// DebrisPalette is the colour set drawn from for debris and UFOs
var DebrisPalette = [...]Color{
	ColorGreen, ColorYellow, ColorPurple, ColorMagenta,
	ColorCyan, ColorBlue, ColorRed, ColorOrange,
}

// Canvas receives one Visual per rendered entity
type Canvas interface {
	Draw(v Visual)
}

// Visual is a read-only snapshot of what an entity wants drawn this frame
// Fields that do not apply to a kind are left zero
type Visual struct {
	Kind     Kind
	Position vmath.Vec2
	Velocity vmath.Vec2
	Shape    physics.Shape
	Color    Color

	Angle  float64 // degrees: debris spin, ship gun
	State  string  // ship state name
	Charge float64 // ship shield charge percent
	Ammo   int     // bullets left in the volley
	Frame  int     // ship window frame 0..7
	Dimmed int     // dimmed shield element index

	Pieces []vmath.Vec2 // explosion piece offsets relative to Position
	Fade   float64      // explosion age as a fraction of its duration

	Text  string
	Blank int // HUD character hidden by the game over sweep, -1 for none
}

// CanvasFunc adapts a function to Canvas
type CanvasFunc func(v Visual)

func (f CanvasFunc) Draw(v Visual) { f(v) }
