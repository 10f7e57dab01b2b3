package engine

import (
	"time"

	"github.com/lixenwraith/automap/vmath"
)

// TicRate is the simulation rate in tics per second
const TicRate = 35

// TicPeriod is the duration of one simulation tic
const TicPeriod = time.Second / TicRate

// MaxCatchUp bounds the tics run in one Advance after a stall
const MaxCatchUp = 10

// TicClock converts pausable game time into whole simulation tics and a sub-tic fraction
type TicClock struct {
	clock *PausableClock
	tics  int64
	// last fraction handed out within the current tic
	lastFrac vmath.Fixed
}

// NewTicClock creates a tic clock on src, or real time when src is nil
func NewTicClock(src TimeSource) *TicClock {
	return &TicClock{clock: NewPausableClock(src)}
}

// Tics returns the number of tics run so far
func (c *TicClock) Tics() int64 {
	return c.tics
}

// Advance reports how many tics are due, capped at MaxCatchUp
// Tics skipped by the cap are dropped rather than replayed
func (c *TicClock) Advance() int {
	due := int64(c.clock.Elapsed()/TicPeriod) - c.tics
	if due <= 0 {
		return 0
	}
	if due > MaxCatchUp {
		c.tics += due - MaxCatchUp
		due = MaxCatchUp
	}
	c.tics += due
	c.lastFrac = 0
	return int(due)
}

// Fraction returns the position inside the current tic in [0, FracUnit)
// It never decreases between two Advance calls
func (c *TicClock) Fraction() vmath.Fixed {
	into := c.clock.Elapsed() - time.Duration(c.tics)*TicPeriod
	if into < 0 {
		into = 0
	}
	frac := vmath.Fixed(int64(into) * vmath.FracUnit / int64(TicPeriod))
	if frac >= vmath.FracUnit {
		frac = vmath.FracUnit - 1
	}
	if frac < c.lastFrac {
		frac = c.lastFrac
	}
	c.lastFrac = frac
	return frac
}

// Pause freezes tic generation
func (c *TicClock) Pause() { c.clock.Pause() }

// Resume continues tic generation without replaying the paused interval
func (c *TicClock) Resume() { c.clock.Resume() }

// IsPaused returns current pause state
func (c *TicClock) IsPaused() bool { return c.clock.IsPaused() }
