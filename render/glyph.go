package render

// Glyph is a small 1-bit bitmap, one byte per row with the leftmost pixel in bit 7
type Glyph struct {
	W, H int
	Rows []uint8
}

// DigitWidth and DigitHeight are the unscaled advance and height of mark digits
const (
	DigitWidth  = 5
	DigitHeight = 6
)

var digits = [10]Glyph{
	{DigitWidth, DigitHeight, []uint8{0x70, 0x88, 0x88, 0x88, 0x88, 0x70}},
	{DigitWidth, DigitHeight, []uint8{0x20, 0x60, 0x20, 0x20, 0x20, 0x70}},
	{DigitWidth, DigitHeight, []uint8{0x70, 0x88, 0x10, 0x20, 0x40, 0xf8}},
	{DigitWidth, DigitHeight, []uint8{0xf0, 0x08, 0x70, 0x08, 0x08, 0xf0}},
	{DigitWidth, DigitHeight, []uint8{0x10, 0x30, 0x50, 0xf8, 0x10, 0x10}},
	{DigitWidth, DigitHeight, []uint8{0xf8, 0x80, 0xf0, 0x08, 0x08, 0xf0}},
	{DigitWidth, DigitHeight, []uint8{0x70, 0x80, 0xf0, 0x88, 0x88, 0x70}},
	{DigitWidth, DigitHeight, []uint8{0xf8, 0x08, 0x10, 0x20, 0x40, 0x40}},
	{DigitWidth, DigitHeight, []uint8{0x70, 0x88, 0x70, 0x88, 0x88, 0x70}},
	{DigitWidth, DigitHeight, []uint8{0x70, 0x88, 0x88, 0x78, 0x08, 0x70}},
}

// Digit returns the mark glyph for d in 0..9
func Digit(d int) *Glyph {
	return &digits[d%10]
}

// Blit draws the set bits of a glyph with its top-left corner at x,y, each bit scale pixels square
// Pixels falling outside the window are dropped
func (w *Window) Blit(g *Glyph, x, y, scale int, c uint8) {
	if scale < 1 {
		scale = 1
	}
	for row := 0; row < g.H; row++ {
		bits := g.Rows[row]
		for col := 0; col < g.W; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					w.Plot(x+col*scale+sx, y+row*scale+sy, c)
				}
			}
		}
	}
}
