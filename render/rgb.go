package render

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Toward moves c a fraction t of the way to o
func (c RGB) Toward(o RGB, t float64) RGB {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return o
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(b)*t + float64(a)*(1-t))
	}
	return RGB{mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B)}
}

// Scaled multiplies every channel by f, saturating at 255
func (c RGB) Scaled(f float64) RGB {
	ch := func(v uint8) uint8 {
		x := float64(v) * f
		if x >= 255 {
			return 255
		}
		if x <= 0 {
			return 0
		}
		return uint8(x)
	}
	return RGB{ch(c.R), ch(c.G), ch(c.B)}
}

// dist2 is the squared euclidean distance between two colors
func (c RGB) dist2(o RGB) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}
