package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups the metrics published by the engine and the game session
// Writers cache pointers at construction and store directly into the atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines formats every metric as "key=value", ints first, then floats, then bools
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Bools.Count()+r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	return lines
}
