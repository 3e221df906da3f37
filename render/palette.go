package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lucasb-eyer/go-colorful"
)

// Background is the letterboxed field colour
var Background = colorful.Color{R: 0.02, G: 0.02, B: 0.05}

// palette maps logical colours to display colours
var palette = map[engine.Color]colorful.Color{
	engine.ColorWhite:   {R: 1, G: 1, B: 1},
	engine.ColorGreen:   hex("#00c000"),
	engine.ColorYellow:  hex("#ffff00"),
	engine.ColorPurple:  hex("#800080"),
	engine.ColorMagenta: hex("#ff00ff"),
	engine.ColorCyan:    hex("#00ffff"),
	engine.ColorBlue:    hex("#0000ff"),
	engine.ColorRed:     hex("#ff0000"),
	engine.ColorOrange:  hex("#ffa500"),
	engine.ColorGray:    hex("#808080"),
	engine.ColorShield:  hex("#6495ed"), // cornflower blue
	engine.ColorBlack:   {},
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the display colour for c, white if unknown
func Lookup(c engine.Color) colorful.Color {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[engine.ColorWhite]
}

// toTcell converts a blended colour to a terminal colour
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// fade blends c toward the background by t in [0,1]
func fade(c colorful.Color, t float64) colorful.Color {
	return c.BlendLab(Background, max(0, min(t, 1)))
}

// dim darkens c by t in [0,1]
func dim(c colorful.Color, t float64) colorful.Color {
	return c.BlendRgb(colorful.Color{}, max(0, min(t, 1)))
}
