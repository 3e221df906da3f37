package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	attackTime = 5 * time.Millisecond
)

// SoundManager plays cues through the speaker via a shared mixer
// Play is a no-op until Initialize succeeds and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	move        moveAlternator
	initialized bool
	seed        int64
}

// NewSoundManager creates a manager with master volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		seed:   time.Now().UnixNano(),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play implements Player
// Failures are logged and dropped
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	t, ok := toneFor(c, &sm.move)
	if !ok || !sm.initialized {
		return
	}
	s, err := sm.streamer(t)
	if err != nil {
		log.Printf("audio: cue %s: %v", c, err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// streamer renders a tone into a finite streamer at master volume
func (sm *SoundManager) streamer(t tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	src := sine
	if t.noise {
		sm.seed++
		src = beep.Mix(sine, &noiseGenerator{seed: sm.seed})
	}
	total := sampleRate.N(t.dur)
	shaped := newEnvelope(src, sampleRate.N(attackTime), total, t.gain)
	return newVolume(beep.Take(total, shaped), sm.volume), nil
}

// newVolume wraps s at linear volume vol; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
