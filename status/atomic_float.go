package status

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/automap/vmath"
)

// AtomicFloat holds a float64 gauge as its bit pattern
// Zero value reads as 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// SetFixed stores a 16.16 value such as a map scale
func (f *AtomicFloat) SetFixed(v vmath.Fixed) {
	f.Set(vmath.ToFloat(v))
}
