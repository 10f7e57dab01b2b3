package automap

import (
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/vmath"
)

// drawPlayers draws the player arrows
// Single player gets one arrow at the camera; netgames draw every slot in its color
func (a *Automap) drawPlayers(lv *level.Level) {
	r := &a.render
	c := &a.rules.Colors
	spectating := a.world.Camera().Spectating

	if !a.world.Netgame() {
		shape := a.rules.PlayerArrow
		if r.Cheat >= level.CheatThings && a.rules.CheatArrow != nil {
			shape = a.rules.CheatArrow
		}
		color := c.Player
		if spectating {
			color = a.tick.pulses.spectator.Color()
		}
		a.drawLineCharacter(shape, 0, r.CameraAngle, color, a.rotated(r.Camera))
		return
	}

	console := a.world.ConsolePlayer()
	for i, p := range a.world.Players() {
		if !p.InGame || i >= len(c.Players) {
			continue
		}
		if i == console && spectating {
			continue
		}
		body := lv.Thing(p.Body)
		if body == nil {
			continue
		}
		color := c.Players[i]
		if p.HasPower(level.PowerInvisibility) {
			color = c.Invisible
		}
		pos, angle := a.thingPosition(body)
		a.drawLineCharacter(a.rules.PlayerArrow, 0, angle, color, a.rotated(pos))
	}

	if spectating {
		a.drawLineCharacter(a.rules.PlayerArrow, 0, r.CameraAngle, a.tick.pulses.spectator.Color(), a.rotated(r.Camera))
	}
}

// drawThings draws every live non-player thing as a triangle sized to its radius
func (a *Automap) drawThings(lv *level.Level) {
	for i := range lv.Things {
		t := &lv.Things[i]
		if t.Removed || t.Player >= 0 {
			continue
		}
		scale := vmath.ToMap(t.Radius)
		if a.rules.IsDecoration != nil && a.rules.IsDecoration(t) {
			scale /= 2
		}
		shape := a.rules.ThingShape
		if t.Flags&level.ThingCountItem != 0 && a.rules.ItemShape != nil {
			shape = a.rules.ItemShape
		}
		pos, angle := a.thingPosition(t)
		a.drawLineCharacter(shape, scale, angle, a.thingColor(lv, t), a.rotated(pos))
		a.m.things.Add(1)
	}
}

// thingColor picks the marker color: chasing monsters pulse bright, idle ones pulse dim,
// the dead, decorations and the uncountable are gray and pickups have their own color
func (a *Automap) thingColor(lv *level.Level, t *level.Thing) uint8 {
	c := &a.rules.Colors
	switch {
	case t.Flags&level.ThingCountKill != 0 && t.Alive():
		if lv.HasLiveTarget(t) {
			return a.tick.pulses.active.Color()
		}
		return a.tick.pulses.inactive.Color()
	case t.Flags&level.ThingCountKill != 0:
		return c.Thing
	case a.rules.IsDecoration != nil && a.rules.IsDecoration(t):
		return c.Thing
	case t.Flags&level.ThingCountItem != 0:
		return c.Item
	}
	return c.Thing
}

// thingPosition interpolates a thing for the current frame
func (a *Automap) thingPosition(t *level.Thing) (MapPoint, vmath.Angle) {
	f := a.render.Frac
	return pointFromWorld(vmath.LerpFixed(t.PrevX, t.X, f), vmath.LerpFixed(t.PrevY, t.Y, f)),
		vmath.LerpAngle(t.PrevAngle, t.Angle, f)
}
