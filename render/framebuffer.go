package render

// Rect is an integer pixel rectangle
type Rect struct {
	X, Y, W, H int
}

// Empty reports a zero-area rectangle
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the bounding box of both rectangles
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Framebuffer is an indexed-color pixel buffer with dirty tracking
// The flip table mirrors every column at plot time
type Framebuffer struct {
	Pix    []uint8
	Width  int
	Height int

	flip  []int // column remap, identity unless flipped
	dirty Rect
}

// NewFramebuffer creates a buffer with the specified dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (fb *Framebuffer) Resize(width, height int) {
	size := width * height
	if cap(fb.Pix) < size {
		fb.Pix = make([]uint8, size)
	} else {
		fb.Pix = fb.Pix[:size]
	}
	flipped := fb.Flipped()
	fb.Width = width
	fb.Height = height
	fb.flip = make([]int, width)
	fb.SetFlip(flipped)
	fb.dirty = Rect{}
}

// SetFlip enables horizontal mirroring of everything plotted afterwards
func (fb *Framebuffer) SetFlip(on bool) {
	for x := range fb.flip {
		if on {
			fb.flip[x] = fb.Width - 1 - x
		} else {
			fb.flip[x] = x
		}
	}
}

// Flipped reports whether the column table mirrors
func (fb *Framebuffer) Flipped() bool {
	return len(fb.flip) > 1 && fb.flip[0] != 0
}

// At reads the stored pixel at physical coordinates
func (fb *Framebuffer) At(x, y int) uint8 {
	return fb.Pix[y*fb.Width+x]
}

// set writes through the flip table, coordinates must be in range
func (fb *Framebuffer) set(x, y int, c uint8) {
	fb.Pix[y*fb.Width+fb.flip[x]] = c
}

// MarkRect records a region as needing presentation
func (fb *Framebuffer) MarkRect(x, y, w, h int) {
	fb.dirty = fb.dirty.Union(Rect{x, y, w, h})
}

// Dirty returns the accumulated dirty rectangle
func (fb *Framebuffer) Dirty() (Rect, bool) {
	return fb.dirty, !fb.dirty.Empty()
}

// ClearDirty resets dirty tracking after presentation
func (fb *Framebuffer) ClearDirty() {
	fb.dirty = Rect{}
}

// Clear fills the whole buffer using exponential copy
func (fb *Framebuffer) Clear(c uint8) {
	if len(fb.Pix) == 0 {
		return
	}
	fb.Pix[0] = c
	for filled := 1; filled < len(fb.Pix); filled *= 2 {
		copy(fb.Pix[filled:], fb.Pix[:filled])
	}
}

// ToRGBA expands the buffer into 4-byte RGBA pixels, dst must hold Width*Height*4 bytes
func (fb *Framebuffer) ToRGBA(pal *Palette, dst []byte) {
	for i, idx := range fb.Pix {
		c := pal[idx]
		o := i * 4
		dst[o] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		dst[o+3] = 0xff
	}
}
