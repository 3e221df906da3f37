package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
)

// Hud shows "HHHHH>NAME SSSSS", takes the high score name from typed keys
// and runs a sweep over the name while no ship is alive
type Hud struct {
	engine.EntityBase
	g *Game

	inputIndex int
	sweep      int
	sweepAt    time.Duration
	blank      int
}

// NewHud resets the round score
func NewHud(g *Game) *Hud {
	g.Score = 0
	h := &Hud{
		EntityBase: engine.NewEntityBase(engine.KindHud, nil),
		g:          g,
		inputIndex: constant.HudNameLength - 1,
		sweep:      constant.HudSweepFirst,
		sweepAt:    g.now,
		blank:      -1,
	}
	if i := strings.IndexByte(g.HiScoreName, '?'); i >= 0 {
		h.inputIndex = i
	}
	return h
}

func (h *Hud) Update(now time.Duration) {
	g := h.g
	if g.HiScoreName == constant.HudNamePlaceholder {
		h.inputIndex = 0
	}
	for _, r := range g.Input().Typed {
		h.enter(r)
	}

	h.blank = -1
	if g.ship() == nil {
		h.blank = h.sweep
		if now-h.sweepAt > constant.HudSweepInterval {
			h.sweepAt = now
			h.sweep++
			if h.sweep > constant.HudSweepLast {
				h.sweep = constant.HudSweepFirst
			}
		}
	}
}

// enter writes r at the cursor, pads the name and advances the cursor
func (h *Hud) enter(r rune) {
	name := []rune(h.g.HiScoreName)
	name = append(name[:min(h.inputIndex, len(name))], r)
	for len(name) < constant.HudNameLength {
		name = append(name, '?')
	}
	h.g.HiScoreName = string(name)
	if h.inputIndex < constant.HudNameLength-1 {
		h.inputIndex++
	}
}

// Text returns the score line
func (h *Hud) Text() string {
	return fmt.Sprintf("%05d>%s %05d", h.g.HiScore, h.g.HiScoreName, h.g.Score)
}

func (h *Hud) Render(c engine.Canvas, now time.Duration) {
	c.Draw(engine.Visual{
		Kind:  engine.KindHud,
		Color: engine.ColorGreen,
		Text:  h.Text(),
		Blank: h.blank,
	})
}
