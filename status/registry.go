package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the automap and its hosts
const (
	PlotRejected = "automap.plot.rejected"
	LinesDrawn   = "automap.lines.drawn"
	LinesClipped = "automap.lines.clipped"
	ThingsDrawn  = "automap.things.drawn"
	Frames       = "automap.frames"
	Ticks        = "automap.ticks"
	Scale        = "automap.scale"
	Mode         = "automap.mode"
	Active       = "automap.active"
)

// Registry is the central metrics facade
// Components cache pointers during init; hot loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot formats every metric as key=value, sorted by key within each type
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return out
}

// Line joins the snapshot with short keys for a single status row
func (r *Registry) Line() string {
	parts := r.Snapshot()
	for i, p := range parts {
		parts[i] = strings.TrimPrefix(p, "automap.")
	}
	return strings.Join(parts, " ")
}
