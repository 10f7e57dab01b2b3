package automap

import "github.com/lixenwraith/automap/vmath"

// MapPoint is a point in map space, world fixed point shifted down by FracToMapBits
type MapPoint struct {
	X, Y int64
}

// MapLine is a map-space segment
type MapLine struct {
	A, B MapPoint
}

// Map-space constants
const (
	// PlayerRadius bounds the closest zoom: the player's diameter fills the frame height
	PlayerRadius int64 = 16 << vmath.MapBits

	// DefaultGridUnit is the blockmap cell size
	DefaultGridUnit int64 = 128 << vmath.MapBits
)

// pointFromWorld reduces a world position to map space
func pointFromWorld(x, y vmath.Fixed) MapPoint {
	return MapPoint{vmath.ToMap(x), vmath.ToMap(y)}
}

// mulMap is FixedMul on map-space values
func mulMap(a, b int64) int64 {
	return (a * b) >> vmath.FracBits
}

// rotateAbout turns p about c
func rotateAbout(p, c MapPoint, a vmath.Angle) MapPoint {
	x, y := vmath.RotateAround(p.X, p.Y, c.X, c.Y, a)
	return MapPoint{x, y}
}
