package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow is how long a key counts as held after its last press or repeat
const DefaultHoldWindow = 250 * time.Millisecond

// Controller turns terminal key events into held directions, fire and typed text
// Terminals report presses and auto-repeats but no releases, so a key stays
// held until the hold window passes without another event for it
type Controller struct {
	mu    sync.Mutex
	table *KeyTable
	hold  time.Duration
	now   func() time.Time

	lastSeen [MotionRight + 1]time.Time
	fireSeen time.Time
	typed    []rune
}

// NewController creates a controller; nil now uses time.Now, hold <= 0 uses DefaultHoldWindow
func NewController(table *KeyTable, hold time.Duration, now func() time.Time) *Controller {
	if table == nil {
		table = DefaultKeyTable()
	}
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Controller{table: table, hold: hold, now: now}
}

// HandleEvent feeds a tcell event; non-key events are ignored
func (c *Controller) HandleEvent(ev tcell.Event) Intent {
	if k, ok := ev.(*tcell.EventKey); ok {
		return c.HandleKey(k.Key(), k.Rune())
	}
	return IntentNone
}

// HandleKey records one key press or repeat and returns any session intent
func (c *Controller) HandleKey(key tcell.Key, r rune) Intent {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.table.Lookup(key, r)
	if !ok {
		if key == tcell.KeyRune && isNameRune(r) {
			c.typed = append(c.typed, r)
		}
		return IntentNone
	}

	now := c.now()
	switch entry.Behavior {
	case BehaviorMotion:
		c.lastSeen[entry.Motion] = now
		// Opposite direction is released immediately so the latest press wins
		switch entry.Motion {
		case MotionUp:
			c.lastSeen[MotionDown] = time.Time{}
		case MotionDown:
			c.lastSeen[MotionUp] = time.Time{}
		case MotionLeft:
			c.lastSeen[MotionRight] = time.Time{}
		case MotionRight:
			c.lastSeen[MotionLeft] = time.Time{}
		}
	case BehaviorFire:
		c.fireSeen = now
	case BehaviorSystem:
		return entry.Intent
	}
	return IntentNone
}

// Poll implements Source
func (c *Controller) Poll() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var st State
	if c.held(c.lastSeen[MotionLeft], now) {
		st.Direction.X = -1
	}
	if c.held(c.lastSeen[MotionRight], now) {
		st.Direction.X = 1
	}
	if c.held(c.lastSeen[MotionUp], now) {
		st.Direction.Y = -1
	}
	if c.held(c.lastSeen[MotionDown], now) {
		st.Direction.Y = 1
	}
	st.Fire = c.held(c.fireSeen, now)
	if len(c.typed) > 0 {
		st.Typed = c.typed
		c.typed = nil
	}
	return st
}

// Release drops every held key, used on pause and round reset
func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = [MotionRight + 1]time.Time{}
	c.fireSeen = time.Time{}
}

func (c *Controller) held(seen, now time.Time) bool {
	return !seen.IsZero() && now.Sub(seen) < c.hold
}

var _ Source = (*Controller)(nil)

