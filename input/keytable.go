package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMotion
	BehaviorFire
	BehaviorSystem
)

// Motion is one of the four held directions
type Motion uint8

const (
	MotionNone Motion = iota
	MotionUp
	MotionDown
	MotionLeft
	MotionRight
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Behavior KeyBehavior
	Motion   Motion
	Intent   Intent
}

// KeyTable maps terminal keys to behaviours
// Runes not listed that are ASCII letters or digits are typed text
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {BehaviorMotion, MotionUp, IntentNone},
			tcell.KeyDown:   {BehaviorMotion, MotionDown, IntentNone},
			tcell.KeyLeft:   {BehaviorMotion, MotionLeft, IntentNone},
			tcell.KeyRight:  {BehaviorMotion, MotionRight, IntentNone},
			tcell.KeyEnter:  {BehaviorFire, MotionNone, IntentNone},
			tcell.KeyEscape: {BehaviorSystem, MotionNone, IntentPause},
			tcell.KeyCtrlP:  {BehaviorSystem, MotionNone, IntentPause},
			tcell.KeyCtrlR:  {BehaviorSystem, MotionNone, IntentRestart},
			tcell.KeyCtrlC:  {BehaviorSystem, MotionNone, IntentQuit},
			tcell.KeyCtrlQ:  {BehaviorSystem, MotionNone, IntentQuit},
			tcell.KeyCtrlD:  {BehaviorSystem, MotionNone, IntentDebug},
		},
		Runes: map[rune]KeyEntry{
			' ': {BehaviorFire, MotionNone, IntentNone},
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		e, ok := kt.Runes[r]
		return e, ok
	}
	e, ok := kt.SpecialKeys[key]
	return e, ok
}

// isNameRune reports whether r may be typed into a high score name
func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
