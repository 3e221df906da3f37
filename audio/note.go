package audio

import "time"

// Note frequencies in Hz
const (
	noteC1 = 32.703
	noteC2 = 65.406
	noteA4 = 440.0
	noteC5 = 523.251
	noteB5 = 987.767
)

// Note lengths at 120 bpm
const (
	quarterNote = 500 * time.Millisecond
	eighthNote  = 250 * time.Millisecond
	blipNote    = 40 * time.Millisecond
)

// tone describes what a cue sounds like
type tone struct {
	freq  float64
	dur   time.Duration
	gain  float64
	noise bool // mix a noise burst under the tone
}

// moveAlternator flips the move cue between two pitches on every call
type moveAlternator struct {
	alt bool
}

func (m *moveAlternator) next() float64 {
	f := noteC5
	if m.alt {
		f = noteB5
	}
	m.alt = !m.alt
	return f
}

// toneFor maps a cue to its tone; the move cue consults the alternator
func toneFor(c Cue, move *moveAlternator) (tone, bool) {
	switch c {
	case CueExplosion:
		return tone{freq: noteC1, dur: quarterNote, gain: 0.8, noise: true}, true
	case CueCollision:
		return tone{freq: noteC2, dur: quarterNote, gain: 0.5, noise: true}, true
	case CueLaser:
		return tone{freq: noteC5, dur: eighthNote, gain: 0.25}, true
	case CueMove:
		return tone{freq: move.next(), dur: eighthNote, gain: 0.1}, true
	case CueUfo:
		return tone{freq: noteA4, dur: blipNote, gain: 0.15}, true
	}
	return tone{}, false
}
