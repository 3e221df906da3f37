package engine

import "time"

// TimeProvider supplies wall clock readings
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads time.Now, which carries a monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
