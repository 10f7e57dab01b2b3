package terminal

import (
	"bufio"
	"io"
)

// Cell is one character cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Writer diffs frames of cells against what the remote terminal already shows and emits only changes
type Writer struct {
	w    *bufio.Writer
	mode ColorMode

	front  []Cell
	width  int
	height int

	cursorX     int
	cursorY     int
	cursorValid bool

	lastFg    RGB
	lastBg    RGB
	lastValid bool
}

// NewWriter wraps an output stream
func NewWriter(w io.Writer, mode ColorMode) *Writer {
	return &Writer{
		w:    bufio.NewWriterSize(w, 64*1024),
		mode: mode,
	}
}

// Mode returns the color mode in use
func (o *Writer) Mode() ColorMode { return o.mode }

// Enter switches to the alternate screen, hides the cursor and enables mouse reporting
func (o *Writer) Enter() error {
	o.w.Write(csiAltScreenEnter)
	o.w.Write(csiCursorHide)
	o.w.Write(csiAutoWrapOff)
	o.w.Write(csiMouseOn)
	o.w.Write(csiSGR0)
	o.w.Write(csiClear)
	o.Invalidate()
	return o.w.Flush()
}

// Exit restores the primary screen
func (o *Writer) Exit() error {
	o.w.Write(csiMouseOff)
	o.w.Write(csiSGR0)
	o.w.Write(csiAutoWrapOn)
	o.w.Write(csiCursorShow)
	o.w.Write(csiAltScreenExit)
	return o.w.Flush()
}

// Invalidate forgets the remote state so the next Flush redraws every cell
func (o *Writer) Invalidate() {
	for i := range o.front {
		o.front[i] = Cell{}
	}
	o.lastValid = false
	o.cursorValid = false
}

func (o *Writer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height
	o.Invalidate()
}

// cellEqual ignores Fg on blank cells since only the background shows
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Bg != b.Bg {
		return false
	}
	return a.Rune == ' ' || a.Fg == b.Fg
}

// Flush writes the changed cells of a width x height frame
func (o *Writer) Flush(cells []Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return nil
	}

	w := o.w
	for y := 0; y < height; y++ {
		row := y * width
		x := 0
		for x < width {
			if cellEqual(cells[row+x], o.front[row+x]) {
				x++
				continue
			}

			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX, o.cursorY = x, y
				o.cursorValid = true
			}

			for x < width {
				i := row + x
				c := cells[i]
				if cellEqual(c, o.front[i]) {
					break
				}
				o.writeStyle(c.Fg, c.Bg)
				r := c.Rune
				if r == 0 {
					r = ' '
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}
				o.front[i] = c
				o.cursorX++
				x++
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false
	return w.Flush()
}

// writeStyle emits one combined SGR sequence for whatever changed
func (o *Writer) writeStyle(fg, bg RGB) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	if !fgChanged && !bgChanged {
		return
	}
	w := o.w
	w.Write(csi)
	if fgChanged {
		writeColor(w, o.mode, 38, fg)
	}
	if bgChanged {
		if fgChanged {
			w.WriteByte(';')
		}
		writeColor(w, o.mode, 48, bg)
	}
	w.WriteByte('m')
	o.lastFg, o.lastBg = fg, bg
	o.lastValid = true
}
