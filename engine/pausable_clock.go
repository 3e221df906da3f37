package engine

import (
	"sync"
	"time"
)

// PausableClock reports game time: wall time since creation minus time spent paused
type PausableClock struct {
	mu sync.RWMutex

	source      TimeProvider
	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a clock on source; nil uses the monotonic provider
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Now returns game time, frozen while paused
func (pc *PausableClock) Now() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Sub(pc.start) - pc.totalPaused
	}
	return pc.source.Now().Sub(pc.start) - pc.totalPaused
}

// Pause freezes game time; no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		pc.paused = true
		pc.pauseStart = pc.source.Now()
	}
}

// Resume continues game time and books the paused interval
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		pc.totalPaused += pc.source.Now().Sub(pc.pauseStart)
		pc.paused = false
		pc.pauseStart = time.Time{}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}
