package automap

import (
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/vmath"
)

// drawGrid draws blockmap-aligned grid lines across the window
// In rotate mode the covered area grows by half a window so turned corners stay filled
func (a *Automap) drawGrid(lv *level.Level) {
	v := &a.render.View
	unit := a.rules.GridUnit
	if unit <= 0 {
		unit = DefaultGridUnit
	}
	rotate := a.tick.Mode.Rotate
	color := a.rules.Colors.Grid
	ox, oy := vmath.ToMap(lv.BlockmapOriginX), vmath.ToMap(lv.BlockmapOriginY)

	// Vertical lines
	start := v.X
	end := v.X2()
	y0, y1 := v.Y, v.Y2()
	if rotate {
		start -= v.H / 2
		end += v.H / 2
		y0 -= v.W / 2
		y1 += v.W / 2
	}
	if m := (start - ox) % unit; m != 0 {
		start -= m
	}
	for x := start; x < end; x += unit {
		a.drawMline(MapLine{a.rotated(MapPoint{x, y0}), a.rotated(MapPoint{x, y1})}, color)
	}

	// Horizontal lines
	start = v.Y
	end = v.Y2()
	x0, x1 := v.X, v.X2()
	if rotate {
		start -= v.W / 2
		end += v.W / 2
		x0 -= v.H / 2
		x1 += v.H / 2
	}
	if m := (start - oy) % unit; m != 0 {
		start -= m
	}
	for y := start; y < end; y += unit {
		a.drawMline(MapLine{a.rotated(MapPoint{x0, y}), a.rotated(MapPoint{x1, y})}, color)
	}
}
