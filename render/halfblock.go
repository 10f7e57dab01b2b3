package render

// UpperHalfBlock is the cell rune whose foreground covers the top pixel row
const UpperHalfBlock = '▀'

// HalfBlockCell is one terminal cell covering two stacked pixels
type HalfBlockCell struct {
	Top, Bottom RGB
}

// HalfBlocks walks the framebuffer two rows at a time and hands each cell to fn
// An odd final row pairs with the background color
func HalfBlocks(fb *Framebuffer, pal *Palette, bg uint8, fn func(x, y int, cell HalfBlockCell)) {
	rows := (fb.Height + 1) / 2
	for cy := 0; cy < rows; cy++ {
		top := cy * 2
		for x := 0; x < fb.Width; x++ {
			cell := HalfBlockCell{Top: pal[fb.At(x, top)], Bottom: pal[bg]}
			if top+1 < fb.Height {
				cell.Bottom = pal[fb.At(x, top+1)]
			}
			fn(x, cy, cell)
		}
	}
}
