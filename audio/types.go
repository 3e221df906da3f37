package audio

import "errors"

// Cue is a named sound event raised by the simulation
type Cue uint8

const (
	CueExplosion Cue = iota
	CueCollision
	CueLaser
	CueMove
	CueUfo
)

var cueNames = [...]string{
	CueExplosion: "explosion",
	CueCollision: "collision",
	CueLaser:     "laser",
	CueMove:      "move",
	CueUfo:       "ufo",
}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Player receives fire-and-forget cue notifications
// Implementations must not block and must not report failure to the caller
type Player interface {
	Play(c Cue)
}

// ErrUnavailable is returned when no audio device can be opened
var ErrUnavailable = errors.New("audio device unavailable")

// NopPlayer discards every cue
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}

// Recorder collects cues in order; safe for single goroutine use
type Recorder struct {
	Cues []Cue
}

func (r *Recorder) Play(c Cue) { r.Cues = append(r.Cues, c) }

// Count returns how many times c was played
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, x := range r.Cues {
		if x == c {
			n++
		}
	}
	return n
}
