package automap

import "github.com/lixenwraith/automap/render"

// Cohen-Sutherland outcodes
const (
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

type framePoint struct {
	x, y int64
}

// outcode classifies a frame point against the window rectangle
func (v *Viewport) outcode(p framePoint) int {
	oc := 0
	if p.y < 0 {
		oc |= outTop
	} else if p.y >= int64(v.FH) {
		oc |= outBottom
	}
	if p.x < 0 {
		oc |= outLeft
	} else if p.x >= int64(v.FW) {
		oc |= outRight
	}
	return oc
}

// Clip reduces a map-space segment to the visible part in window pixels
// It returns false when nothing of the segment is inside the window
func (v *Viewport) Clip(ml MapLine) (render.Line, bool) {
	var oc1, oc2 int

	// Trivial reject in map space, before any transform
	if ml.A.Y > v.Y2() {
		oc1 = outTop
	} else if ml.A.Y < v.Y {
		oc1 = outBottom
	}
	if ml.B.Y > v.Y2() {
		oc2 = outTop
	} else if ml.B.Y < v.Y {
		oc2 = outBottom
	}
	if oc1&oc2 != 0 {
		return render.Line{}, false
	}

	if ml.A.X < v.X {
		oc1 |= outLeft
	} else if ml.A.X > v.X2() {
		oc1 |= outRight
	}
	if ml.B.X < v.X {
		oc2 |= outLeft
	} else if ml.B.X > v.X2() {
		oc2 |= outRight
	}
	if oc1&oc2 != 0 {
		return render.Line{}, false
	}

	a := framePoint{v.CXMTOF(ml.A.X), v.CYMTOF(ml.A.Y)}
	b := framePoint{v.CXMTOF(ml.B.X), v.CYMTOF(ml.B.Y)}

	oc1 = v.outcode(a)
	oc2 = v.outcode(b)
	if oc1&oc2 != 0 {
		return render.Line{}, false
	}

	fw, fh := int64(v.FW), int64(v.FH)
	for oc1|oc2 != 0 {
		outside := oc2
		if oc1 != 0 {
			outside = oc1
		}

		// The violated boundary guarantees a nonzero delta on its axis:
		// one endpoint is beyond it and the other is not
		var tmp framePoint
		switch {
		case outside&outTop != 0:
			dy := a.y - b.y
			dx := b.x - a.x
			tmp.x = a.x + dx*a.y/dy
			tmp.y = 0
		case outside&outBottom != 0:
			dy := a.y - b.y
			dx := b.x - a.x
			tmp.x = a.x + dx*(a.y-fh)/dy
			tmp.y = fh - 1
		case outside&outRight != 0:
			dy := b.y - a.y
			dx := b.x - a.x
			tmp.y = a.y + dy*(fw-1-a.x)/dx
			tmp.x = fw - 1
		case outside&outLeft != 0:
			dy := b.y - a.y
			dx := b.x - a.x
			tmp.y = a.y + dy*(-a.x)/dx
			tmp.x = 0
		}

		if outside == oc1 {
			a = tmp
			oc1 = v.outcode(a)
		} else {
			b = tmp
			oc2 = v.outcode(b)
		}

		if oc1&oc2 != 0 {
			return render.Line{}, false
		}
	}

	return render.Line{
		A: render.Point{X: int(a.x), Y: int(a.y)},
		B: render.Point{X: int(b.x), Y: int(b.y)},
	}, true
}
