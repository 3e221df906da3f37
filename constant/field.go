package constant

import "time"

// Logical field, in screen units; the renderer scales it to the terminal
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// MoveScale converts an entity speed into logical units per second of game time
const MoveScale = 36.0

// FrameRate is the default tick frequency
const FrameRate = 60

// RestartDelay is the pause between a ship's destruction and the next round
const RestartDelay = 5000 * time.Millisecond
