package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds string metrics so the debug status row stays short
const MaxStringLen = 32

// AtomicString is a string metric; the zero value reads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, cut to MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		n := MaxStringLen
		for n > 0 && !utf8.RuneStart(val[n]) {
			n--
		}
		val = val[:n]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
