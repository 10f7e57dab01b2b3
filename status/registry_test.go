package status

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lixenwraith/automap/vmath"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	m := NewMetricMap[int]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Errorf("Expected same pointer for repeated Get")
	}
	if !m.Has("x") || m.Has("y") {
		t.Errorf("Has mismatch")
	}
	if m.Count() != 1 {
		t.Errorf("Expected count 1, got %d", m.Count())
	}
}

func TestAtomicFloatSetFixed(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %f", f.Get())
	}
	f.SetFixed(vmath.FracUnit / 4)
	if got := f.Get(); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"short", "follow,grid", 11},
		{"ascii", strings.Repeat("a", MaxStringLen+10), MaxStringLen},
		// 3-byte runes: 10 fit in 32 bytes, the 11th would straddle the limit
		{"multibyte", strings.Repeat("▀", 20), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s AtomicString
			s.Store(tt.in)
			got := s.Load()
			if len(got) != tt.want {
				t.Errorf("Expected length %d, got %d", tt.want, len(got))
			}
			if !utf8.ValidString(got) {
				t.Errorf("Expected valid UTF-8, got %q", got)
			}
		})
	}

	var zero AtomicString
	if zero.Load() != "" {
		t.Errorf("Expected empty zero value, got %q", zero.Load())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"c", "a", "d", "b", "a"} {
		*m.Get(k)++
	}
	var keys []string
	m.Range(func(k string, v *int) {
		keys = append(keys, k)
	})
	if strings.Join(keys, "") != "abcd" {
		t.Errorf("Expected abcd, got %v", keys)
	}
	if *m.Get("a") != 2 {
		t.Errorf("Expected a counted twice, got %d", *m.Get("a"))
	}
}

func TestSnapshotSortedAndTyped(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(Frames).Store(3)
	r.Ints.Get(Ticks).Store(7)
	r.Bools.Get(Active).Store(true)
	r.Floats.Get(Scale).Set(0.5)
	r.Strings.Get(Mode).Store("follow")

	snap := r.Snapshot()
	want := []string{
		"automap.active=true",
		"automap.frames=3",
		"automap.ticks=7",
		"automap.scale=0.500",
		"automap.mode=follow",
	}
	if len(snap) != len(want) {
		t.Fatalf("Expected %d entries, got %d: %v", len(want), len(snap), snap)
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, want[i], snap[i])
		}
	}
	if line := r.Line(); !strings.HasPrefix(line, "active=true frames=3") {
		t.Errorf("Unexpected line %q", line)
	}
}
