package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/status"
	"github.com/lixenwraith/debris-field/vmath"
	"github.com/mattn/go-runewidth"
)

// cellAspect is the height of a terminal cell in widths
const cellAspect = 2.0

// Terminal draws visuals onto a tcell screen, letterboxing the logical field
// Call Begin before a frame's Draw calls and End after them
type Terminal struct {
	screen tcell.Screen
	fieldW float64
	fieldH float64
	reg    *status.Registry

	cols   int
	rows   int
	scaleX float64
	scaleY float64
	offX   int
	offY   int
	boxW   int
	boxH   int

	debug  bool
	paused bool
}

// NewTerminal wraps an initialised screen; reg feeds the debug overlay and may be nil
func NewTerminal(screen tcell.Screen, fieldW, fieldH float64, reg *status.Registry) *Terminal {
	return &Terminal{screen: screen, fieldW: fieldW, fieldH: fieldH, reg: reg}
}

// SetPaused shows or hides the pause banner
func (t *Terminal) SetPaused(paused bool) { t.paused = paused }

// ToggleDebug flips the metrics overlay and returns the new state
func (t *Terminal) ToggleDebug() bool {
	t.debug = !t.debug
	return t.debug
}

// Begin clears the screen and fits the field to the current terminal size
func (t *Terminal) Begin() {
	t.cols, t.rows = t.screen.Size()
	t.fit()

	t.screen.Clear()
	bg := tcell.StyleDefault.Background(toTcell(Background))
	for y := t.offY; y < t.offY+t.boxH; y++ {
		for x := t.offX; x < t.offX+t.boxW; x++ {
			t.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
}

// fit picks the largest scale that shows the whole field, centred horizontally
func (t *Terminal) fit() {
	sx := float64(t.cols) / t.fieldW
	sy := float64(t.rows) * cellAspect / t.fieldH
	s := min(sx, sy)
	t.scaleX = s
	t.scaleY = s / cellAspect
	t.boxW = int(t.fieldW * t.scaleX)
	t.boxH = int(t.fieldH * t.scaleY)
	t.offX = (t.cols - t.boxW) / 2
	t.offY = 0
}

// End draws the overlays and flushes the frame
func (t *Terminal) End() {
	if t.paused {
		t.centered(t.offY+t.boxH/2, "PAUSED", t.style(engine.ColorWhite))
	}
	if t.debug && t.reg != nil {
		style := t.style(engine.ColorGray)
		for i, line := range t.reg.Lines() {
			t.text(0, i, line, style)
		}
	}
	t.screen.Show()
}

// Cell maps a logical position to a screen cell; ok is false outside the field
func (t *Terminal) Cell(p vmath.Vec2) (x, y int, ok bool) {
	if p.X < 0 || p.Y < 0 || p.X >= t.fieldW || p.Y >= t.fieldH {
		return 0, 0, false
	}
	x = t.offX + int(math.Floor(p.X*t.scaleX))
	y = t.offY + int(math.Floor(p.Y*t.scaleY))
	return x, y, x < t.offX+t.boxW && y < t.offY+t.boxH
}

func (t *Terminal) style(c engine.Color) tcell.Style {
	return t.styleOf(toTcell(Lookup(c)))
}

func (t *Terminal) styleOf(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(toTcell(Background))
}

// plot draws r at a logical position, clipped to the field
func (t *Terminal) plot(p vmath.Vec2, r rune, style tcell.Style) {
	if x, y, ok := t.Cell(p); ok {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

// text writes s starting at a screen cell, advancing by display width
func (t *Terminal) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= t.cols {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// centered writes s centred on row y of the field
func (t *Terminal) centered(y int, s string, style tcell.Style) {
	x := t.offX + (t.boxW-runewidth.StringWidth(s))/2
	t.text(max(x, 0), y, s, style)
}
