package automap

import (
	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/vmath"
)

// crosshairArm is the crosshair half length in pixels
const crosshairArm = 2

// Draw renders the open map into fb at a sub-tic fraction and marks the window dirty
// It reads TickState and the world but never writes them
func (a *Automap) Draw(fb *render.Framebuffer, frac vmath.Fixed) {
	if !a.active || a.world == nil {
		return
	}
	r := &a.render

	if fb.Flipped() != a.cfg.FlipLevels {
		fb.SetFlip(a.cfg.FlipLevels)
	}
	r.win = render.NewWindow(fb, a.winX, a.winY, a.winW, a.winH)
	r.win.Rejected = a.m.rejected
	// Resolved once per frame, not per line
	r.drawer = a.lineDrawer()

	a.interpolate(frac)
	a.clearBackground()

	lv := a.world.Level()
	if a.tick.Mode.Grid {
		a.drawGrid(lv)
	}
	a.drawWalls(lv)
	a.drawPlayers(lv)
	if r.Cheat >= level.CheatThings {
		a.drawThings(lv)
	}
	if !a.tick.Mode.Follow {
		a.drawCrosshair()
	}
	a.drawMarks()

	fb.MarkRect(r.win.X, r.win.Y, r.win.W, r.win.H)
	a.m.frames.Add(1)
}

// lineDrawer picks the rasterizer for this frame from the config
func (a *Automap) lineDrawer() render.LineDrawer {
	thick := render.ThickLine{Radius: render.ThicknessRadius(a.cfg.Thickness, a.multiplier())}
	if !a.cfg.Smoothing {
		return thick
	}
	return render.WuLine{
		Ramps:    a.ramps,
		Radius:   thick.Radius,
		EdgeFade: a.edgeFade(),
		Fallback: thick,
	}
}

func (a *Automap) edgeFade() bool {
	switch a.cfg.EdgeFade {
	case config.EdgeFadeOn:
		return true
	case config.EdgeFadeOff:
		return false
	}
	return a.rules.EdgeFade
}

// clearBackground fills the window, or only dims the view underneath in overlay mode
func (a *Automap) clearBackground() {
	if !a.tick.Mode.Overlay {
		a.render.win.Fill(a.rules.Colors.Background)
		return
	}
	if a.dim != nil {
		a.render.win.Remap(a.dim)
	}
}

// rotated turns a map point about the window center when rotate mode is on
func (a *Automap) rotated(p MapPoint) MapPoint {
	if !a.tick.Mode.Rotate {
		return p
	}
	return rotateAbout(p, a.render.View.Center(), a.render.MapAngle)
}

// drawMline clips a map-space line and hands it to the frame's rasterizer
func (a *Automap) drawMline(l MapLine, color uint8) {
	r := &a.render
	fl, ok := r.View.Clip(l)
	if !ok {
		a.m.clipped.Add(1)
		return
	}
	r.drawer.DrawLine(r.win, fl, color)
	a.m.drawn.Add(1)
}

// drawWalls classifies every level line; deferred lines are flushed last so they end on top
func (a *Automap) drawWalls(lv *level.Level) {
	r := &a.render
	view := ClassifyView{
		Cheat:         r.Cheat,
		RevealSecrets: a.cfg.RevealSecrets,
	}
	players := a.world.Players()
	if i := a.world.ConsolePlayer(); i >= 0 && i < len(players) {
		view.AllMap = players[i].HasPower(level.PowerAllMap)
	}

	for i := range lv.Lines {
		l := &lv.Lines[i]
		c := a.rules.Classifier.Classify(lv, l, view)
		if !c.Draw {
			continue
		}
		v1, v2 := lv.LineVertices(l)
		m := MapLine{
			A: a.rotated(pointFromWorld(v1.X, v1.Y)),
			B: a.rotated(pointFromWorld(v2.X, v2.Y)),
		}
		if c.Deferred {
			r.deferred = append(r.deferred, deferredLine{m, c.Color})
			continue
		}
		a.drawMline(m, c.Color)
	}

	for _, d := range r.deferred {
		a.drawMline(d.line, d.color)
	}
	r.deferred = r.deferred[:0]
}

// drawLineCharacter draws a vector shape scaled, turned to angle and placed at p
// A zero scale means the shape is already in map units
func (a *Automap) drawLineCharacter(shape []MapLine, scale int64, angle vmath.Angle, color uint8, p MapPoint) {
	if a.tick.Mode.Rotate {
		angle += a.render.MapAngle
	}
	place := func(q MapPoint) MapPoint {
		if scale != 0 {
			q = MapPoint{mulMap(scale, q.X), mulMap(scale, q.Y)}
		}
		if angle != 0 {
			q.X, q.Y = vmath.Rotate(q.X, q.Y, angle)
		}
		return MapPoint{q.X + p.X, q.Y + p.Y}
	}
	for _, l := range shape {
		a.drawMline(MapLine{place(l.A), place(l.B)}, color)
	}
}

// drawCrosshair marks the window center while the view is detached from the player
func (a *Automap) drawCrosshair() {
	w := a.render.win
	cx, cy := a.render.View.FW/2, a.render.View.FH/2
	c := a.rules.Colors.Crosshair
	for d := -crosshairArm; d <= crosshairArm; d++ {
		w.Plot(cx+d, cy, c)
		w.Plot(cx, cy+d, c)
	}
}

// drawMarks blits mark numbers right to left; digits that would leave the window are skipped
func (a *Automap) drawMarks() {
	v := &a.render.View
	mult := int64(a.multiplier())
	w := int64(render.DigitWidth) * mult
	h := int64(render.DigitHeight) * mult
	color := a.rules.Colors.Mark

	for i := 0; i < a.marks.Len(); i++ {
		p := a.rotated(a.marks.At(i))
		fx := v.CXMTOF(p.X) - mult
		fy := v.CYMTOF(p.Y) - 2*mult

		for j := i; ; {
			d := j % 10
			// One is a narrow digit
			if d == 1 {
				fx += mult
			}
			if fx >= 0 && fx <= int64(v.FW)-w && fy >= 0 && fy <= int64(v.FH)-h {
				a.render.win.Blit(render.Digit(d), int(fx), int(fy), int(mult), color)
			}
			fx -= w - mult
			j /= 10
			if j == 0 {
				break
			}
		}
	}
}
