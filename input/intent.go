package input

// Intent is a session-level request decoded from a key press
// Movement and fire are not intents; they are folded into State
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentPause
	IntentRestart
	IntentDebug
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentQuit:    "quit",
	IntentPause:   "pause",
	IntentRestart: "restart",
	IntentDebug:   "debug",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
