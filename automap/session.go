package automap

import (
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/vmath"
)

// Mode is the set of user toggles of an open automap
type Mode struct {
	Follow  bool
	Grid    bool
	Rotate  bool
	Overlay bool
	// Big is set while zoomed all the way out with the previous view saved
	Big bool
}

// TickState is the authoritative per-tic state
// Only Tick and the responder write it; Draw reads it
type TickState struct {
	Clock int
	View  Viewport
	// Prev is View as it was at the start of the current tic
	Prev  Viewport
	Saved Snapshot
	Mode  Mode
	Cheat level.CheatLevel

	// Held motion set by input; pan in pixels per tic, zoom as a 16.16 factor
	panX, panY int
	zoomMul    vmath.Fixed

	// Impulses consumed by the next tic
	wheelMul     vmath.Fixed
	dragX, dragY int

	pulses pulses
}

// reset clears motion and animation for a fresh session, keeping view and toggles
func (t *TickState) reset(bands PulseBands) {
	t.Clock = 0
	t.Prev = t.View
	t.panX, t.panY = 0, 0
	t.zoomMul = vmath.FracUnit
	t.wheelMul = vmath.FracUnit
	t.dragX, t.dragY = 0, 0
	t.pulses = newPulses(bands)
}

// deferredLine is a wall held back until the main pass is done
type deferredLine struct {
	line  MapLine
	color uint8
}

// RenderState is rebuilt by every Draw from TickState and the world
type RenderState struct {
	View Viewport
	Frac vmath.Fixed
	// Camera is the interpolated viewpoint in map space
	Camera      MapPoint
	CameraAngle vmath.Angle
	// MapAngle turns the map so the view direction points up in rotate mode
	MapAngle vmath.Angle
	Cheat    level.CheatLevel

	win    *render.Window
	drawer render.LineDrawer

	// deferred grows to the largest frame and is truncated after each flush
	deferred []deferredLine

	lastClock int
	lastFrac  vmath.Fixed
}
