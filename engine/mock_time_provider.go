package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven TimeProvider for deterministic tests
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider starts the mock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the mock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
