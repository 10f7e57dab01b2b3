package level

import "github.com/lixenwraith/automap/vmath"

// Thing flags used by the automap color chain
const (
	ThingSolid      uint32 = 0x00000002
	ThingShootable  uint32 = 0x00000004
	ThingShadow     uint32 = 0x00040000
	ThingCorpse     uint32 = 0x00100000
	ThingCountKill  uint32 = 0x00400000
	ThingCountItem  uint32 = 0x00800000
	ThingNotDMatch  uint32 = 0x02000000
	ThingDecoration uint32 = 0x80000000 // blood, puffs and other short-lived effects
)

// ThingID indexes Level.Things
type ThingID int32

// NoThing is the empty handle
const NoThing ThingID = -1

// Thing is a map object: monster, item, decoration or player body
type Thing struct {
	X, Y         vmath.Fixed
	PrevX, PrevY vmath.Fixed
	Angle        vmath.Angle
	PrevAngle    vmath.Angle
	Type         int
	Radius       vmath.Fixed
	Flags        uint32
	Health       int
	Target       ThingID // non-owning; may refer to a removed thing
	Player       int     // player slot, -1 when not a player body
	Sector       SectorID
	Removed      bool
}

// Thing resolves a handle; removed or out of range handles yield nil
func (lv *Level) Thing(id ThingID) *Thing {
	if id < 0 || int(id) >= len(lv.Things) {
		return nil
	}
	t := &lv.Things[id]
	if t.Removed {
		return nil
	}
	return t
}

// AddThing appends to the arena and returns the handle
func (lv *Level) AddThing(t Thing) ThingID {
	t.PrevX, t.PrevY, t.PrevAngle = t.X, t.Y, t.Angle
	lv.Things = append(lv.Things, t)
	return ThingID(len(lv.Things) - 1)
}

// RemoveThing marks a thing removed; its slot is kept so stale handles resolve to nil
func (lv *Level) RemoveThing(id ThingID) {
	if t := lv.Thing(id); t != nil {
		t.Removed = true
	}
}

// HasLiveTarget reports whether the thing is chasing something that still exists
func (lv *Level) HasLiveTarget(t *Thing) bool {
	target := lv.Thing(t.Target)
	return target != nil && target.Health > 0
}

// Alive reports positive health
func (t *Thing) Alive() bool {
	return t.Health > 0
}

// SavePrevious snapshots the current position for interpolation, called at the start of a tic
func (t *Thing) SavePrevious() {
	t.PrevX, t.PrevY, t.PrevAngle = t.X, t.Y, t.Angle
}
