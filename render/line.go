package render

// Point is a window-space pixel coordinate
type Point struct {
	X, Y int
}

// Line is a clipped window-space segment
type Line struct {
	A, B Point
}

// LineDrawer rasterizes a clipped segment into a window
// Implementations must tolerate endpoints outside the window by dropping the line
type LineDrawer interface {
	DrawLine(w *Window, l Line, color uint8)
}

// MaxThickness is the largest configurable line thickness
const MaxThickness = 6

// ThicknessRadius maps the thickness setting to a dot radius
// Setting 0 is automatic and follows the resolution multiplier
func ThicknessRadius(setting, multiplier int) int {
	if setting <= 0 {
		return multiplier / 2
	}
	return min(setting, MaxThickness) - 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
