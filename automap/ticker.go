package automap

import (
	"github.com/lixenwraith/automap/vmath"
)

// Tick advances one simulation tic; it does nothing while the map is closed
func (a *Automap) Tick() {
	if !a.active {
		return
	}
	t := &a.tick
	t.Clock++
	t.Prev = t.View

	if t.Mode.Follow {
		t.View.CenterOn(t.View.Snap(a.cameraPoint()))
	}

	if mul := vmath.FixedMul(t.zoomMul, t.wheelMul); mul != vmath.FracUnit {
		t.View.Zoom(mul)
		a.m.scale.SetFixed(t.View.ScaleMtoF)
	}
	t.wheelMul = vmath.FracUnit

	a.applyPan()

	if t.Clock%2 == 0 {
		t.pulses.step()
	}
	a.m.ticks.Add(1)
}

// applyPan moves the window by the held keyboard velocity plus any drag impulse
// Any movement leaves follow mode
func (a *Automap) applyPan() {
	t := &a.tick
	v := &t.View

	dx := v.FTOM(int64(t.panX)) - v.FTOM(int64(t.dragX))
	dragY := t.dragY
	if v.square {
		dragY = dragY * 6 / 5
	}
	dy := v.FTOM(int64(t.panY)) + v.FTOM(int64(dragY))
	t.dragX, t.dragY = 0, 0

	if dx == 0 && dy == 0 {
		return
	}
	if t.Mode.Follow {
		t.Mode.Follow = false
		a.publishMode()
	}
	if t.Mode.Rotate {
		dx, dy = vmath.Rotate(dx, dy, -a.mapAngle())
	}
	v.Pan(dx, dy)
}

// mapAngle turns the current view direction to point up
func (a *Automap) mapAngle() vmath.Angle {
	return vmath.Ang90 - a.world.Camera().Angle
}

// frameFraction applies the interpolation rules to the host's sub-tic fraction
// Capped play and the first tic of a session draw the tic state as is;
// within one tic the fraction never goes backwards
func (a *Automap) frameFraction(frac vmath.Fixed) vmath.Fixed {
	r := &a.render
	if !a.cfg.Uncapped || a.tick.Clock == 0 || frac > vmath.FracUnit {
		frac = vmath.FracUnit
	}
	if frac < 0 {
		frac = 0
	}
	if a.tick.Clock == r.lastClock && frac < r.lastFrac {
		frac = r.lastFrac
	}
	r.lastClock, r.lastFrac = a.tick.Clock, frac
	return frac
}

// interpolate builds the render view for this frame without touching TickState
func (a *Automap) interpolate(frac vmath.Fixed) {
	r := &a.render
	t := &a.tick

	r.Frac = a.frameFraction(frac)
	r.View = lerpViewport(&t.Prev, &t.View, r.Frac)

	cam := a.world.Camera()
	x, y, ang := cam.Position(r.Frac)
	r.Camera = pointFromWorld(x, y)
	r.CameraAngle = ang
	r.MapAngle = vmath.Ang90 - ang
	r.Cheat = a.Cheat()

	if t.Mode.Follow {
		r.View.CenterOn(r.View.Snap(r.Camera))
	}
}
