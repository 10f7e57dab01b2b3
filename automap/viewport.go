package automap

import (
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/vmath"
)

// initialZoom is the fraction of the fit-to-window scale shown on level entry
const initialZoom vmath.Fixed = vmath.FracUnit * 7 / 10

// Viewport maps a rectangle of map space onto the automap window
// X, Y is the lower-left corner of the visible rectangle, W, H its size, all in map units
type Viewport struct {
	FW, FH int
	// vh is the frame height in square pixels; it differs from FH under aspect correction
	vh     int
	square bool

	X, Y, W, H int64

	ScaleMtoF vmath.Fixed
	ScaleFtoM vmath.Fixed
	MinScale  vmath.Fixed
	MaxScale  vmath.Fixed

	// Level bounds in map space
	Min, Max MapPoint
}

// Snapshot is a bit-exact copy of the window position and scale
type Snapshot struct {
	X, Y, W, H int64
	ScaleMtoF  vmath.Fixed
	ScaleFtoM  vmath.Fixed
}

// MTOF converts a map distance to frame pixels
func (v Viewport) MTOF(x int64) int64 {
	return ((x * int64(v.ScaleMtoF)) >> vmath.FracBits) >> 16
}

// FTOM converts a frame distance to map units
func (v Viewport) FTOM(x int64) int64 {
	return ((x << 16) * int64(v.ScaleFtoM)) >> vmath.FracBits
}

// CXMTOF converts a map x coordinate to a window column
func (v Viewport) CXMTOF(x int64) int64 {
	return v.MTOF(x - v.X)
}

// CYMTOF converts a map y coordinate to a window row, y grows downward on screen
func (v Viewport) CYMTOF(y int64) int64 {
	if v.square {
		return int64(v.FH) - v.MTOF(y-v.Y)*5/6
	}
	return int64(v.FH) - v.MTOF(y-v.Y)
}

// X2 is the right edge of the visible rectangle
func (v Viewport) X2() int64 { return v.X + v.W }

// Y2 is the top edge of the visible rectangle
func (v Viewport) Y2() int64 { return v.Y + v.H }

// Center returns the middle of the visible rectangle
func (v Viewport) Center() MapPoint {
	return MapPoint{v.X + v.W/2, v.Y + v.H/2}
}

// SetFrame sets the window size in pixels; square corrects for the 6:5 pixel aspect of 320x200 modes
// The center is kept and the current scale is re-clamped to the new limits
func (v *Viewport) SetFrame(fw, fh int, square bool) {
	v.FW, v.FH = max(fw, 1), max(fh, 1)
	v.square = square
	v.vh = v.FH
	if square {
		v.vh = v.FH * 6 / 5
	}
	if v.ScaleMtoF == 0 {
		return
	}
	v.computeLimits()
	v.SetScale(v.ScaleMtoF)
}

// SetBounds derives zoom limits from the level extents and applies the entry scale
func (v *Viewport) SetBounds(b level.Bounds) {
	v.Min = pointFromWorld(b.MinX, b.MinY)
	v.Max = pointFromWorld(b.MaxX, b.MaxY)
	v.computeLimits()

	s := vmath.FixedDiv(v.MinScale, initialZoom)
	if s > v.MaxScale {
		s = v.MinScale
	}
	v.SetScale(s)
}

// computeLimits fits the whole level for the minimum scale and the player's diameter for the maximum
func (v *Viewport) computeLimits() {
	maxW := max(v.Max.X-v.Min.X, 1)
	maxH := max(v.Max.Y-v.Min.Y, 1)

	a := vmath.FixedDiv(vmath.FromInt(v.FW), vmath.Fixed(maxW))
	b := vmath.FixedDiv(vmath.FromInt(v.vh), vmath.Fixed(maxH))
	v.MinScale = min(a, b)
	v.MaxScale = vmath.FixedDiv(vmath.FromInt(v.vh), vmath.Fixed(2*PlayerRadius))
	// A level smaller than the player would invert the range
	v.MinScale = min(v.MinScale, v.MaxScale)
}

// SetScale clamps s into [MinScale, MaxScale] and resizes the window about its center
func (v *Viewport) SetScale(s vmath.Fixed) {
	s = max(v.MinScale, min(s, v.MaxScale))
	v.ScaleMtoF = s
	v.ScaleFtoM = vmath.FixedDiv(vmath.FracUnit, s)
	v.activateNewScale()
}

// Zoom multiplies the scale by a 16.16 factor
func (v *Viewport) Zoom(mul vmath.Fixed) {
	v.SetScale(vmath.FixedMul(v.ScaleMtoF, mul))
}

// MinOut zooms all the way out
func (v *Viewport) MinOut() {
	v.SetScale(v.MinScale)
}

// activateNewScale recomputes the window size for the current scale, anchored on the center
func (v *Viewport) activateNewScale() {
	c := v.Center()
	v.W = v.FTOM(int64(v.FW))
	v.H = v.FTOM(int64(v.vh))
	v.X = c.X - v.W/2
	v.Y = c.Y - v.H/2
}

// Pan moves the window and clamps its center to the level bounds
func (v *Viewport) Pan(dx, dy int64) {
	v.X += dx
	v.Y += dy
	v.clampCenter()
}

// clampCenter keeps each axis of the center inside the level box independently
func (v *Viewport) clampCenter() {
	if v.X+v.W/2 > v.Max.X {
		v.X = v.Max.X - v.W/2
	} else if v.X+v.W/2 < v.Min.X {
		v.X = v.Min.X - v.W/2
	}
	if v.Y+v.H/2 > v.Max.Y {
		v.Y = v.Max.Y - v.H/2
	} else if v.Y+v.H/2 < v.Min.Y {
		v.Y = v.Min.Y - v.H/2
	}
}

// CenterOn places p in the middle of the window without clamping
func (v *Viewport) CenterOn(p MapPoint) {
	v.X = p.X - v.W/2
	v.Y = p.Y - v.H/2
}

// Snapshot saves position and scale
func (v Viewport) Snapshot() Snapshot {
	return Snapshot{X: v.X, Y: v.Y, W: v.W, H: v.H, ScaleMtoF: v.ScaleMtoF, ScaleFtoM: v.ScaleFtoM}
}

// Restore returns to a saved position and scale exactly
func (v *Viewport) Restore(s Snapshot) {
	v.X, v.Y, v.W, v.H = s.X, s.Y, s.W, s.H
	v.ScaleMtoF, v.ScaleFtoM = s.ScaleMtoF, s.ScaleFtoM
}

// Snap rounds a map point to the nearest whole frame pixel, so a followed point does not jitter
func (v Viewport) Snap(p MapPoint) MapPoint {
	return MapPoint{v.FTOM(v.MTOF(p.X)), v.FTOM(v.MTOF(p.Y))}
}

// lerpViewport blends two tic states for a mid-tic frame
// Scale and center are interpolated; size follows from the blended scale
func lerpViewport(prev, cur *Viewport, frac vmath.Fixed) Viewport {
	out := *cur
	if frac >= vmath.FracUnit {
		return out
	}
	if prev.ScaleMtoF != cur.ScaleMtoF {
		out.ScaleMtoF = vmath.LerpFixed(prev.ScaleMtoF, cur.ScaleMtoF, frac)
		out.ScaleFtoM = vmath.FixedDiv(vmath.FracUnit, out.ScaleMtoF)
		out.W = out.FTOM(int64(out.FW))
		out.H = out.FTOM(int64(out.vh))
	}
	pc, cc := prev.Center(), cur.Center()
	out.CenterOn(MapPoint{vmath.Lerp(pc.X, cc.X, frac), vmath.Lerp(pc.Y, cc.Y, frac)})
	return out
}
