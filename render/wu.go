package render

const (
	intensityBits  = 3
	intensityShift = 16 - intensityBits
	complementMask = NumShades - 1
	// fadeBand is the edge distance in pixels over which the optional vignette darkens lines
	fadeBand = 32
)

// WuLine is the antialiased strategy
// Colors without a ramp are drawn by Fallback instead
type WuLine struct {
	Ramps    *Ramps
	Radius   int
	EdgeFade bool
	Fallback ThickLine
}

// DrawLine implements LineDrawer
func (wl WuLine) DrawLine(w *Window, l Line, color uint8) {
	ramp := wl.Ramps.Lookup(color)
	if ramp == nil {
		wl.Fallback.DrawLine(w, l, color)
		return
	}
	if !w.acceptLine(l) {
		return
	}

	x0, y0, x1, y1 := l.A.X, l.A.Y, l.B.X, l.B.Y
	// Draw top to bottom
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	xdir := 1
	deltaX := x1 - x0
	if deltaX < 0 {
		xdir = -1
		deltaX = -deltaX
	}
	deltaY := y1 - y0

	// Horizontal, vertical and diagonal lines pass through pixel centers and carry the thickness
	switch {
	case deltaY == 0:
		wl.solid(w, ramp, x0, y0, wl.Radius)
		for ; deltaX > 0; deltaX-- {
			x0 += xdir
			wl.solid(w, ramp, x0, y0, wl.Radius)
		}
		return
	case deltaX == 0:
		wl.solid(w, ramp, x0, y0, wl.Radius)
		for ; deltaY > 0; deltaY-- {
			y0++
			wl.solid(w, ramp, x0, y0, wl.Radius)
		}
		return
	case deltaX == deltaY:
		wl.solid(w, ramp, x0, y0, wl.Radius)
		for ; deltaY > 0; deltaY-- {
			x0 += xdir
			y0++
			wl.solid(w, ramp, x0, y0, wl.Radius)
		}
		return
	}

	// The weighted body is one pixel wide, so its endpoints are too
	wl.solid(w, ramp, x0, y0, 0)
	var errAcc uint16

	if deltaY > deltaX {
		// Y-major: the neighbor sits along x
		errAdj := uint16((uint32(deltaX) << 16) / uint32(deltaY))
		for deltaY--; deltaY > 0; deltaY-- {
			prev := errAcc
			errAcc += errAdj
			if errAcc <= prev {
				x0 += xdir
			}
			y0++
			weight := int(errAcc >> intensityShift)
			wl.shade(w, ramp, x0, y0, weight)
			wl.shade(w, ramp, x0+xdir, y0, weight^complementMask)
		}
		wl.solid(w, ramp, x1, y1, 0)
		return
	}

	// X-major: the neighbor sits one row down
	errAdj := uint16((uint32(deltaY) << 16) / uint32(deltaX))
	for deltaX--; deltaX > 0; deltaX-- {
		prev := errAcc
		errAcc += errAdj
		if errAcc <= prev {
			y0++
		}
		x0 += xdir
		weight := int(errAcc >> intensityShift)
		wl.shade(w, ramp, x0, y0, weight)
		wl.shade(w, ramp, x0, y0+1, weight^complementMask)
	}
	wl.solid(w, ramp, x1, y1, 0)
}

// solid plots a full-intensity dot of radius r
func (wl WuLine) solid(w *Window, ramp *Ramp, x, y, r int) {
	if wl.EdgeFade {
		w.Dot(x, y, r, ramp[wl.fade(w, x, y, 0)])
		return
	}
	w.Dot(x, y, r, ramp[0])
}

// shade plots one weighted pixel of the general case
func (wl WuLine) shade(w *Window, ramp *Ramp, x, y, weight int) {
	if wl.EdgeFade {
		weight = wl.fade(w, x, y, weight)
	}
	w.Plot(x, y, ramp[weight])
}

// fade darkens shades near the window edges
// The result never passes the ramp end and never exceeds the input by more than six levels
func (wl WuLine) fade(w *Window, x, y, weight int) int {
	s := weight
	if x < fadeBand {
		s += 7 - (x >> 2)
	} else if x > w.W-fadeBand {
		s += 7 - ((w.W - x) >> 2)
	}
	if y < fadeBand {
		s += 7 - (y >> 2)
	} else if y > w.H-fadeBand {
		s += 7 - ((w.H - y) >> 2)
	}
	if s > NumShades-1 {
		s = NumShades - 1
	} else if s > weight+6 {
		s = weight + 6
	}
	return s
}
