package render

// ThickLine is the solid strategy: integer Bresenham with every point widened to a disc
type ThickLine struct {
	Radius int
}

// DrawLine implements LineDrawer
func (t ThickLine) DrawLine(w *Window, l Line, color uint8) {
	if !w.acceptLine(l) {
		return
	}

	dx := l.B.X - l.A.X
	ax := 2 * abs(dx)
	sx := sign(dx)

	dy := l.B.Y - l.A.Y
	ay := 2 * abs(dy)
	sy := sign(dy)

	x, y := l.A.X, l.A.Y

	if ax > ay {
		d := ay - ax/2
		for {
			w.Dot(x, y, t.Radius, color)
			if x == l.B.X {
				return
			}
			if d >= 0 {
				y += sy
				d -= ax
			}
			x += sx
			d += ay
		}
	}

	d := ax - ay/2
	for {
		w.Dot(x, y, t.Radius, color)
		if y == l.B.Y {
			return
		}
		if d >= 0 {
			x += sx
			d -= ay
		}
		y += sy
		d += ax
	}
}
