package render

import "sync/atomic"

// Window is a rectangular view into a framebuffer
// All coordinates are relative to the window origin
type Window struct {
	fb         *Framebuffer
	X, Y, W, H int

	// Rejected counts lines refused by the endpoint bounds check, may be nil
	Rejected *atomic.Int64
}

// NewWindow clips the requested rectangle to the framebuffer
func NewWindow(fb *Framebuffer, x, y, w, h int) *Window {
	x = max(0, min(x, fb.Width))
	y = max(0, min(y, fb.Height))
	w = max(0, min(w, fb.Width-x))
	h = max(0, min(h, fb.Height-y))
	return &Window{fb: fb, X: x, Y: y, W: w, H: h}
}

// Framebuffer returns the backing buffer
func (w *Window) Framebuffer() *Framebuffer {
	return w.fb
}

// InBounds returns true if the point is inside the window
func (w *Window) InBounds(x, y int) bool {
	return x >= 0 && x < w.W && y >= 0 && y < w.H
}

// Plot writes one pixel, silently dropping points outside the window
func (w *Window) Plot(x, y int, c uint8) {
	if !w.InBounds(x, y) {
		return
	}
	w.fb.set(w.X+x, w.Y+y, c)
}

// At reads a pixel in window coordinates, honoring the flip table
func (w *Window) At(x, y int) uint8 {
	return w.fb.Pix[(w.Y+y)*w.fb.Width+w.fb.flip[w.X+x]]
}

// Fill paints the whole window
func (w *Window) Fill(c uint8) {
	for y := 0; y < w.H; y++ {
		row := w.fb.Pix[(w.Y+y)*w.fb.Width+w.X : (w.Y+y)*w.fb.Width+w.X+w.W]
		if len(row) == 0 {
			continue
		}
		row[0] = c
		for filled := 1; filled < len(row); filled *= 2 {
			copy(row[filled:], row[:filled])
		}
	}
}

// Remap replaces every pixel through a translation table
func (w *Window) Remap(table *[256]uint8) {
	for y := 0; y < w.H; y++ {
		row := w.fb.Pix[(w.Y+y)*w.fb.Width+w.X : (w.Y+y)*w.fb.Width+w.X+w.W]
		for i, c := range row {
			row[i] = table[c]
		}
	}
}

// Dot plots a filled disc of the given radius; radius 0 is a single pixel
func (w *Window) Dot(x, y, radius int, c uint8) {
	if radius <= 0 {
		w.Plot(x, y, c)
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				w.Plot(x+dx, y+dy, c)
			}
		}
	}
}

// acceptLine is the shared endpoint check of both line strategies
func (w *Window) acceptLine(l Line) bool {
	if w.InBounds(l.A.X, l.A.Y) && w.InBounds(l.B.X, l.B.Y) {
		return true
	}
	if w.Rejected != nil {
		w.Rejected.Add(1)
	}
	return false
}
