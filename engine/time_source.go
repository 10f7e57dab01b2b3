package engine

import (
	"sync"
	"time"
)

// TimeSource reports the current time
// Hosts run on SystemTime; tests step a ManualTime
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the wall clock, monotonic reading included
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime only moves when told to
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTime starts a manual clock at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceTics moves the clock forward by n simulation tics
func (m *ManualTime) AdvanceTics(n int) {
	m.Advance(time.Duration(n) * TicPeriod)
}
