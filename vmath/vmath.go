package vmath

import "math"

// Q16.16 fixed point constants, matching the level data format
const (
	FracBits = 16
	FracUnit = 1 << FracBits
	FracMask = FracUnit - 1

	// Map space drops the low bits of world coordinates so scale multiplies stay inside int64
	MapBits       = 12
	MapUnit       = 1 << MapBits
	FracToMapBits = FracBits - MapBits
)

// Fixed is a 16.16 fixed point value
type Fixed int32

// --- Arithmetic ---

func FromInt(i int) Fixed       { return Fixed(i << FracBits) }
func ToInt(f Fixed) int         { return int(f >> FracBits) }
func FromFloat(f float64) Fixed { return Fixed(f * FracUnit) }
func ToFloat(f Fixed) float64   { return float64(f) / FracUnit }

// FixedMul multiplies with a 64-bit intermediate
func FixedMul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FracBits)
}

// FixedDiv divides with saturation when the quotient cannot fit in 16.16
func FixedDiv(a, b Fixed) Fixed {
	if Abs(a)>>14 >= Abs(b) {
		if (a ^ b) < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return Fixed((int64(a) << FracBits) / int64(b))
}

// Abs returns absolute value
func Abs(x Fixed) Fixed {
	if x < 0 {
		return -x
	}
	return x
}

// Abs64 returns absolute value of a map-space coordinate
func Abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// --- Map space ---

// ToMap reduces a world coordinate to map space
func ToMap(f Fixed) int64 {
	return int64(f) >> FracToMapBits
}

// MapFromUnits converts whole world units directly to map space
func MapFromUnits(units int) int64 {
	return int64(units) << MapBits
}

// --- Interpolation ---

// Lerp interpolates map-space values, frac in [0, FracUnit]
func Lerp(prev, cur int64, frac Fixed) int64 {
	if frac >= FracUnit {
		return cur
	}
	return prev + ((cur-prev)*int64(frac))>>FracBits
}

// LerpFixed interpolates two 16.16 values
func LerpFixed(prev, cur, frac Fixed) Fixed {
	if frac >= FracUnit {
		return cur
	}
	return prev + Fixed(((int64(cur)-int64(prev))*int64(frac))>>FracBits)
}
