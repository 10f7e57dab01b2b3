package level

import "github.com/lixenwraith/automap/vmath"

// MaxPlayers is the number of multiplayer slots
const MaxPlayers = 4

// PowerType indexes Player.Powers
type PowerType int

const (
	PowerInvulnerability PowerType = iota
	PowerStrength
	PowerInvisibility
	PowerIronFeet
	PowerAllMap // computer area map
	PowerInfrared
	NumPowers
)

// CheatLevel is the map reveal cheat depth
type CheatLevel int

const (
	CheatNone   CheatLevel = iota
	CheatWalls             // all lines shown
	CheatThings            // all lines and things shown
)

// Player is one player slot
type Player struct {
	InGame bool
	Body   ThingID
	Powers [NumPowers]int
	Cheats CheatLevel
}

// HasPower reports a nonzero power counter
func (p *Player) HasPower(pw PowerType) bool {
	return p.Powers[pw] != 0
}

// Camera is the viewpoint the renderer uses, with previous-tic values for interpolation
type Camera struct {
	X, Y         vmath.Fixed
	PrevX, PrevY vmath.Fixed
	Angle        vmath.Angle
	PrevAngle    vmath.Angle
	// Spectating is set when the view is detached from the console player's body
	Spectating bool
}

// Position returns the camera position interpolated by frac
func (c Camera) Position(frac vmath.Fixed) (vmath.Fixed, vmath.Fixed, vmath.Angle) {
	return vmath.LerpFixed(c.PrevX, c.X, frac),
		vmath.LerpFixed(c.PrevY, c.Y, frac),
		vmath.LerpAngle(c.PrevAngle, c.Angle, frac)
}

// CameraFromThing builds a camera sitting on a thing
func CameraFromThing(t *Thing) Camera {
	return Camera{
		X: t.X, Y: t.Y, PrevX: t.PrevX, PrevY: t.PrevY,
		Angle: t.Angle, PrevAngle: t.PrevAngle,
	}
}
