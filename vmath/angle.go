package vmath

// Angle is a binary angle: the full uint32 range is one turn
type Angle uint32

const (
	Ang45  Angle = 0x20000000
	Ang90  Angle = 0x40000000
	Ang180 Angle = 0x80000000
	Ang270 Angle = 0xc0000000
)

// AngleFromDegrees converts whole degrees, as stored in map thing records
func AngleFromDegrees(deg int) Angle {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return Angle(uint64(deg) * (1 << 32) / 360)
}

// Degrees returns the angle in whole degrees, rounded down
func (a Angle) Degrees() int {
	return int(uint64(a) * 360 >> 32)
}

// LerpAngle interpolates along the shortest arc
func LerpAngle(prev, cur Angle, frac Fixed) Angle {
	if frac >= FracUnit {
		return cur
	}
	delta := int64(int32(cur - prev))
	return prev + Angle((delta*int64(frac))>>FracBits)
}
