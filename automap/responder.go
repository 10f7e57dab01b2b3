package automap

import (
	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/vmath"
)

// Responder offers an input event to the automap and reports whether it was consumed
// It must run before other consumers while the map may be open
func (a *Automap) Responder(ev input.Event) bool {
	blocked := a.ctx.Blocks()
	if blocked && ev.Type != input.EventKeyUp {
		return false
	}

	in := a.machine.Process(ev)
	if in == nil {
		return false
	}
	if blocked {
		// A release still stops held motion so it cannot stick behind a menu
		if a.active && !in.Pressed {
			a.handle(in)
		}
		return false
	}

	if !a.active {
		if in.Type == input.IntentToggleMap && in.Pressed && a.world != nil {
			a.Start(a.world)
			return true
		}
		return false
	}
	return a.handle(in)
}

// handle applies one intent to an open map
func (a *Automap) handle(in *input.Intent) bool {
	t := &a.tick

	switch in.Type {
	case input.IntentToggleMap:
		a.Stop()
		return true

	case input.IntentPanLeft, input.IntentPanRight, input.IntentPanUp, input.IntentPanDown:
		// Keyboard panning belongs to the player while following
		if t.Mode.Follow {
			return false
		}
		a.setPan(in)
		return true

	case input.IntentZoomIn, input.IntentZoomOut:
		if !in.Pressed {
			t.zoomMul = vmath.FracUnit
			return true
		}
		mul := a.zoomStep(in.Speed)
		if in.Type == input.IntentZoomOut {
			mul = vmath.FixedDiv(vmath.FracUnit, mul)
		}
		t.zoomMul = mul
		return true

	case input.IntentZoomWheel:
		step := vmath.FromFloat(a.cfg.ZoomWheel)
		for n := in.Wheel; n > 0; n-- {
			t.wheelMul = vmath.FixedMul(t.wheelMul, step)
		}
		for n := in.Wheel; n < 0; n++ {
			t.wheelMul = vmath.FixedDiv(t.wheelMul, step)
		}
		return true

	case input.IntentDrag:
		t.dragX += in.DX
		t.dragY += in.DY
		return true

	case input.IntentGoBig:
		a.toggleBig()
		return true

	case input.IntentFollow:
		t.Mode.Follow = !t.Mode.Follow
		t.panX, t.panY = 0, 0
		a.message("Follow Mode %s", onOff(t.Mode.Follow))

	case input.IntentGrid:
		t.Mode.Grid = !t.Mode.Grid
		a.message("Grid %s", onOff(t.Mode.Grid))

	case input.IntentRotate:
		t.Mode.Rotate = !t.Mode.Rotate
		a.message("Rotate Mode %s", onOff(t.Mode.Rotate))

	case input.IntentOverlay:
		t.Mode.Overlay = !t.Mode.Overlay
		a.message("Overlay Mode %s", onOff(t.Mode.Overlay))

	case input.IntentMark:
		a.message("Marked Spot %d", a.AddMark())
		return true

	case input.IntentClearMark:
		if in.Speed {
			a.ClearMarks()
			a.message("All Marks Cleared")
		} else if n := a.marks.RemoveLast(); n >= 0 {
			a.message("Cleared Spot %d", n)
		}
		return true

	case input.IntentCheat:
		t.Cheat = (t.Cheat + 1) % (level.CheatThings + 1)
		a.publishMode()
		// The cheat keys are also ordinary letters for other consumers
		return false

	default:
		// Quit, resize and the bare speed key belong to the host
		return false
	}

	a.publishMode()
	return true
}

// setPan sets or clears one axis of the held pan velocity
func (a *Automap) setPan(in *input.Intent) {
	t := &a.tick
	speed := a.cfg.PanSpeed * a.multiplier()
	if in.Speed {
		speed *= 2
	}
	if !in.Pressed {
		speed = 0
	}
	switch in.Type {
	case input.IntentPanLeft:
		t.panX = -speed
	case input.IntentPanRight:
		t.panX = speed
	case input.IntentPanUp:
		t.panY = speed
	case input.IntentPanDown:
		t.panY = -speed
	}
}

// zoomStep is the per-tic zoom factor for the current speed tier
func (a *Automap) zoomStep(fast bool) vmath.Fixed {
	if fast {
		return vmath.FromFloat(a.cfg.ZoomFast)
	}
	return vmath.FromFloat(a.cfg.ZoomSlow)
}

// toggleBig zooms all the way out, or returns to the view saved on the way out
func (a *Automap) toggleBig() {
	t := &a.tick
	if !t.Mode.Big {
		t.Saved = t.View.Snapshot()
		t.View.MinOut()
		t.Mode.Big = true
	} else {
		t.View.Restore(t.Saved)
		if t.Mode.Follow {
			t.View.CenterOn(t.View.Snap(a.cameraPoint()))
		}
		t.Mode.Big = false
	}
	a.m.scale.SetFixed(t.View.ScaleMtoF)
	a.publishMode()
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
