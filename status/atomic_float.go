package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as its bit pattern
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the value
func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Load returns the value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Smooth blends sample into the stored value with weight alpha and returns the result
// First sample on a zero value is stored as-is
func (f *AtomicFloat) Smooth(sample, alpha float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next := sample
		if old != 0 {
			next = cur + alpha*(sample-cur)
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
