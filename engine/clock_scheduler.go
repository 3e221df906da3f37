package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/debris-field/core"
)

// ClockScheduler calls a frame function at a fixed interval on its own goroutine
// Deadlines advance by the interval so short stalls are caught up; a stall
// longer than two intervals resynchronises instead of bursting frames
type ClockScheduler struct {
	interval time.Duration
	frame    func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frames atomic.Uint64
}

// NewClockScheduler creates a scheduler running frame every interval
func NewClockScheduler(interval time.Duration, frame func()) *ClockScheduler {
	return &ClockScheduler{
		interval: interval,
		frame:    frame,
		stopChan: make(chan struct{}),
	}
}

// Start begins the loop; later calls are no-ops
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.loop)
	}
}

// Stop halts the loop and waits for the current frame to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.Load() {
			cs.wg.Wait()
		}
	})
}

// Frames returns the number of frames run so far
func (cs *ClockScheduler) Frames() uint64 {
	return cs.frames.Load()
}

func (cs *ClockScheduler) loop() {
	defer cs.wg.Done()

	timer := time.NewTimer(0)
	defer timer.Stop()
	deadline := time.Now()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.frame()
		cs.frames.Add(1)

		deadline = deadline.Add(cs.interval)
		now := time.Now()
		if now.Sub(deadline) > cs.interval*2 {
			deadline = now.Add(cs.interval)
		}
		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
