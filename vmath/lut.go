package vmath

import "math"

// Fine angle table resolution
const (
	FineAngles       = 8192
	FineMask         = FineAngles - 1
	AngleToFineShift = 19
)

// FineSine covers five quarter turns so cosine can index with an offset
var FineSine [FineAngles * 5 / 4]Fixed

func init() {
	// Sample at half-step offsets so no entry is exactly zero
	for i := range FineSine {
		rad := (float64(i) + 0.5) * 2.0 * math.Pi / FineAngles
		FineSine[i] = Fixed(math.Round(math.Sin(rad) * FracUnit))
	}
}

// Sin returns the fine sine of a BAM angle
func Sin(a Angle) Fixed {
	return FineSine[uint32(a)>>AngleToFineShift]
}

// Cos returns the fine cosine of a BAM angle
func Cos(a Angle) Fixed {
	return FineSine[(uint32(a)>>AngleToFineShift)+FineAngles/4]
}
