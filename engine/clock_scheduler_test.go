package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestClockSchedulerRunsAndStops(t *testing.T) {
	var count atomic.Int64
	reached := make(chan struct{})
	cs := NewClockScheduler(time.Millisecond, func() {
		if count.Add(1) == 5 {
			close(reached)
		}
	})

	cs.Start()
	cs.Start()

	select {
	case <-reached:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not run 5 frames")
	}

	cs.Stop()
	stopped := count.Load()
	if cs.Frames() != uint64(stopped) {
		t.Errorf("Frames = %d, count = %d", cs.Frames(), stopped)
	}
	time.Sleep(10 * time.Millisecond)
	if count.Load() != stopped {
		t.Errorf("frames ran after Stop: %d -> %d", stopped, count.Load())
	}
	cs.Stop()
}

func TestClockSchedulerStopWithoutStart(t *testing.T) {
	cs := NewClockScheduler(time.Millisecond, func() {})
	done := make(chan struct{})
	go func() {
		cs.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a scheduler that never started")
	}
}
