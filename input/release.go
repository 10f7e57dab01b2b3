package input

import (
	"time"

	"github.com/lixenwraith/automap/terminal"
)

// Hold windows for synthesized releases; the first press must outlast the
// terminal's autorepeat delay, later repeats arrive at the repeat rate
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

type heldKey struct {
	key terminal.Key
	r   rune
}

type heldState struct {
	last    time.Time
	repeats int
}

// Releaser synthesizes key releases for hosts that only see presses
// Autorepeat presses of a held key are collapsed into the original press
type Releaser struct {
	InitialHold time.Duration
	RepeatHold  time.Duration

	held map[heldKey]*heldState
	out  []Event
}

// NewReleaser uses the default hold windows
func NewReleaser() *Releaser {
	return &Releaser{
		InitialHold: DefaultInitialHold,
		RepeatHold:  DefaultRepeatHold,
		held:        make(map[heldKey]*heldState),
	}
}

// Press records a key press; it returns false for an autorepeat of a key already held
func (r *Releaser) Press(ev Event, now time.Time) bool {
	if ev.Type != EventKeyDown {
		return true
	}
	k := heldKey{ev.Key, ev.Rune}
	if s, ok := r.held[k]; ok {
		s.last = now
		s.repeats++
		return false
	}
	r.held[k] = &heldState{last: now}
	return true
}

// Expire returns release events for keys whose hold window has lapsed
// The returned slice is reused by the next call
func (r *Releaser) Expire(now time.Time) []Event {
	r.out = r.out[:0]
	for k, s := range r.held {
		window := r.InitialHold
		if s.repeats > 0 {
			window = r.RepeatHold
		}
		if now.Sub(s.last) < window {
			continue
		}
		delete(r.held, k)
		r.out = append(r.out, Event{Type: EventKeyUp, Key: k.key, Rune: k.r})
	}
	return r.out
}

// ReleaseAll drops every held key, e.g. when focus is lost
func (r *Releaser) ReleaseAll() []Event {
	r.out = r.out[:0]
	for k := range r.held {
		delete(r.held, k)
		r.out = append(r.out, Event{Type: EventKeyUp, Key: k.key, Rune: k.r})
	}
	return r.out
}

// Held reports the number of keys currently considered down
func (r *Releaser) Held() int {
	return len(r.held)
}
