package level

import "github.com/lixenwraith/automap/vmath"

// State is a minimal game-side owner of a level and its players
// Front ends use it to drive the automap without a full simulation
type State struct {
	Map         *Level
	Slots       [MaxPlayers]Player
	Console     int
	Multiplayer bool
	// View overrides the console player's body as the viewpoint when set
	View *Camera
	// Wander walks the console player's body in a slow circle each tic
	Wander bool

	leveltime int
}

// NewState wraps a level with the console player in slot 0 on the given body
func NewState(lv *Level, body ThingID) *State {
	s := &State{Map: lv}
	s.Slots[0] = Player{InGame: true, Body: body}
	return s
}

func (s *State) Level() *Level { return s.Map }
func (s *State) Players() []Player { return s.Slots[:] }
func (s *State) ConsolePlayer() int { return s.Console }
func (s *State) Netgame() bool { return s.Multiplayer }
func (s *State) LevelTime() int { return s.leveltime }

// ConsoleSlot returns the local player's slot for cheats and powers
func (s *State) ConsoleSlot() *Player { return &s.Slots[s.Console] }

// Camera returns the explicit view or the console player's body
func (s *State) Camera() Camera {
	if s.View != nil {
		return *s.View
	}
	if t := s.Map.Thing(s.Slots[s.Console].Body); t != nil {
		return CameraFromThing(t)
	}
	return Camera{}
}

// Tick advances one simulation tic
func (s *State) Tick() {
	s.leveltime++
	for i := range s.Map.Things {
		s.Map.Things[i].SavePrevious()
	}
	if s.View != nil {
		s.View.PrevX, s.View.PrevY, s.View.PrevAngle = s.View.X, s.View.Y, s.View.Angle
	}
	if !s.Wander {
		return
	}
	t := s.Map.Thing(s.Slots[s.Console].Body)
	if t == nil {
		return
	}
	// One degree of turn and four units forward per tic
	t.Angle += vmath.AngleFromDegrees(1)
	t.X += vmath.FixedMul(vmath.FromInt(4), vmath.Cos(t.Angle))
	t.Y += vmath.FixedMul(vmath.FromInt(4), vmath.Sin(t.Angle))
}
