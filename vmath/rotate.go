package vmath

// Rotate turns a map-space vector by a, 64-bit products throughout
func Rotate(x, y int64, a Angle) (int64, int64) {
	c := int64(Cos(a))
	s := int64(Sin(a))
	rx := (x*c)>>FracBits - (y*s)>>FracBits
	ry := (x*s)>>FracBits + (y*c)>>FracBits
	return rx, ry
}

// RotateAround turns a point about a center
func RotateAround(x, y, cx, cy int64, a Angle) (int64, int64) {
	rx, ry := Rotate(x-cx, y-cy, a)
	return rx + cx, ry + cy
}
