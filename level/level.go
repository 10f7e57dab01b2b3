// Package level holds the read-only geometry, thing and player data the automap consumes.
// All cross references are index handles into arena slices owned by Level.
package level

import (
	"math"

	"github.com/lixenwraith/automap/vmath"
)

// Line flags, shared by the Doom and Hexen map formats
const (
	LineBlocking      uint16 = 1 << 0
	LineBlockMonsters uint16 = 1 << 1
	LineTwoSided      uint16 = 1 << 2
	LineDontPegTop    uint16 = 1 << 3
	LineDontPegBottom uint16 = 1 << 4
	LineSecret        uint16 = 1 << 5 // drawn as a plain wall
	LineSoundBlock    uint16 = 1 << 6
	LineDontDraw      uint16 = 1 << 7 // never shown on the map
	LineMapped        uint16 = 1 << 8 // seen by the player
)

// SectorID indexes Level.Sectors
type SectorID int32

// NoSector marks a missing back side
const NoSector SectorID = -1

// Vertex is a map vertex in world fixed point
type Vertex struct {
	X, Y vmath.Fixed
}

// Sector carries the heights and specials used for line classification
type Sector struct {
	FloorHeight   vmath.Fixed
	CeilingHeight vmath.Fixed
	Special       int16
	// OldSpecial remembers the special before the game cleared it, e.g. a secret once found
	OldSpecial int16
	Tag        int16
}

// Line is a linedef resolved to vertex and sector indices
type Line struct {
	V1, V2  int
	Flags   uint16
	Special int16
	Tag     int16
	Args    [5]byte // Hexen action arguments
	Front   SectorID
	Back    SectorID
}

// TwoSided reports whether the line has a back sector
func (l *Line) TwoSided() bool {
	return l.Back != NoSector
}

// Bounds is a world-space bounding box
type Bounds struct {
	MinX, MinY vmath.Fixed
	MaxX, MaxY vmath.Fixed
}

// Level is the arena owning all geometry and things for one map
type Level struct {
	Name     string
	Vertices []Vertex
	Lines    []Line
	Sectors  []Sector
	Things   []Thing

	// Blockmap origin anchors the automap grid
	BlockmapOriginX vmath.Fixed
	BlockmapOriginY vmath.Fixed
}

// Sector returns a sector by handle, nil for NoSector or an out of range id
func (lv *Level) Sector(id SectorID) *Sector {
	if id < 0 || int(id) >= len(lv.Sectors) {
		return nil
	}
	return &lv.Sectors[id]
}

// LineVertices returns both endpoints of a line
func (lv *Level) LineVertices(l *Line) (Vertex, Vertex) {
	return lv.Vertices[l.V1], lv.Vertices[l.V2]
}

// Bounds scans all vertices
func (lv *Level) Bounds() Bounds {
	b := Bounds{
		MinX: math.MaxInt32, MinY: math.MaxInt32,
		MaxX: -math.MaxInt32, MaxY: -math.MaxInt32,
	}
	for _, v := range lv.Vertices {
		b.MinX = min(b.MinX, v.X)
		b.MaxX = max(b.MaxX, v.X)
		b.MinY = min(b.MinY, v.Y)
		b.MaxY = max(b.MaxY, v.Y)
	}
	if len(lv.Vertices) == 0 {
		return Bounds{}
	}
	return b
}

// SetDefaultBlockmapOrigin places the origin the way node builders do, 8 units outside the bounds
func (lv *Level) SetDefaultBlockmapOrigin() {
	b := lv.Bounds()
	lv.BlockmapOriginX = b.MinX - vmath.FromInt(8)
	lv.BlockmapOriginY = b.MinY - vmath.FromInt(8)
}

// MarkAllMapped sets the mapped flag on every line, as if the player had seen the whole level
func (lv *Level) MarkAllMapped() {
	for i := range lv.Lines {
		lv.Lines[i].Flags |= LineMapped
	}
}
