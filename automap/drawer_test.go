package automap

import (
	"testing"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/vmath"
)

func drawOnce(am *Automap) *render.Framebuffer {
	fb := render.NewFramebuffer(320, 200)
	am.Draw(fb, vmath.FracUnit)
	return fb
}

// A one-sided wall drawn over a coincident step must win whatever the line order
func TestWallsDrawnOverSteps(t *testing.T) {
	step := level.Line{V1: 4, V2: 5, Flags: level.LineMapped, Front: 0, Back: 1}
	wall := level.Line{V1: 4, V2: 5, Flags: level.LineMapped, Front: 0, Back: level.NoSector}

	tests := []struct {
		name  string
		lines []level.Line
		floor bool
	}{
		{"step alone", []level.Line{step}, true},
		{"step first", []level.Line{step, wall}, false},
		{"wall first", []level.Line{wall, step}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lv := testLevel()
			lv.Lines = append(lv.Lines, tt.lines...)
			am, _, _ := newTestMap(t, lv, nil)
			c := am.Ruleset().Colors

			fb := drawOnce(am)
			if got := countColor(fb, c.FloorChange) > 0; got != tt.floor {
				t.Errorf("Expected floor change pixels %v, got %d", tt.floor, countColor(fb, c.FloorChange))
			}
			if countColor(fb, c.Wall) == 0 {
				t.Errorf("Expected wall pixels")
			}
		})
	}
}

func TestDrawMarksWindowDirty(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	am.SetWindow(0, 0, 320, 160)
	fb := drawOnce(am)
	r, ok := fb.Dirty()
	if !ok || r != (render.Rect{X: 0, Y: 0, W: 320, H: 160}) {
		t.Errorf("Expected automap window dirty, got %+v %v", r, ok)
	}
}

func TestDrawLeavesTickState(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), func(c *config.Config) { c.Grid = true })
	press(am, '=')
	am.Tick()
	before := am.tick

	fb := render.NewFramebuffer(320, 200)
	for _, f := range []vmath.Fixed{0, vmath.FracUnit / 3, vmath.FracUnit} {
		am.Draw(fb, f)
	}
	if am.tick != before {
		t.Errorf("Expected Draw to leave the tic state untouched")
	}
}

func TestGridToggle(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	grid := am.Ruleset().Colors.Grid

	if n := countColor(drawOnce(am), grid); n != 0 {
		t.Errorf("Expected no grid pixels, got %d", n)
	}
	press(am, 'g')
	if n := countColor(drawOnce(am), grid); n == 0 {
		t.Errorf("Expected grid pixels")
	}
}

func TestCrosshairOnlyWhenDetached(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	c := am.Ruleset().Colors.Crosshair

	if n := countColor(drawOnce(am), c); n != 0 {
		t.Errorf("Expected no crosshair while following, got %d", n)
	}
	press(am, 'f')
	// Two arms of five pixels sharing the center
	if n := countColor(drawOnce(am), c); n != 9 {
		t.Errorf("Expected 9 crosshair pixels, got %d", n)
	}
}

func TestOverlayKeepsView(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	const scene = 5

	fb := render.NewFramebuffer(320, 200)
	fb.Clear(scene)
	am.Draw(fb, vmath.FracUnit)
	if n := countColor(fb, scene); n != 0 {
		t.Errorf("Expected background fill to cover the scene, %d pixels left", n)
	}

	press(am, 'o')
	fb.Clear(scene)
	am.Draw(fb, vmath.FracUnit)
	if n := countColor(fb, scene); n == 0 {
		t.Errorf("Expected overlay to keep the scene")
	}
}

func TestMarksBlitted(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	am.rules.Colors.Mark = 250

	if n := countColor(drawOnce(am), 250); n != 0 {
		t.Fatalf("Expected no mark pixels, got %d", n)
	}
	press(am, 'm')
	if n := countColor(drawOnce(am), 250); n == 0 {
		t.Errorf("Expected mark digit drawn")
	}
}

func TestThingsNeedCheat(t *testing.T) {
	lv := testLevel()
	lv.AddThing(level.Thing{
		X: fx(100), Y: fx(100), Radius: fx(20), Health: 50,
		Flags: level.ThingCountItem, Target: level.NoThing, Player: -1,
	})
	am, st, _ := newTestMap(t, lv, nil)
	am.rules.Colors.Item = 250

	if n := countColor(drawOnce(am), 250); n != 0 {
		t.Errorf("Expected things hidden without cheat, got %d", n)
	}
	st.ConsoleSlot().Cheats = level.CheatThings
	if n := countColor(drawOnce(am), 250); n == 0 {
		t.Errorf("Expected item drawn at full cheat")
	}
}

func TestThingColor(t *testing.T) {
	lv := testLevel()
	am, st, _ := newTestMap(t, lv, nil)
	c := am.Ruleset().Colors
	body := st.Slots[0].Body

	tests := []struct {
		name  string
		thing level.Thing
		want  uint8
	}{
		{"chasing", level.Thing{Health: 10, Flags: level.ThingCountKill, Target: body}, am.tick.pulses.active.Color()},
		{"idle", level.Thing{Health: 10, Flags: level.ThingCountKill, Target: level.NoThing}, am.tick.pulses.inactive.Color()},
		{"dead", level.Thing{Health: 0, Flags: level.ThingCountKill, Target: body}, c.Thing},
		{"item", level.Thing{Health: 1, Flags: level.ThingCountItem}, c.Item},
		{"decorative item", level.Thing{Health: 1, Flags: level.ThingCountItem | level.ThingDecoration}, c.Thing},
		{"scenery", level.Thing{Health: 1}, c.Thing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := am.thingColor(lv, &tt.thing); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}

	// A removed target no longer counts
	chaser := level.Thing{Health: 10, Flags: level.ThingCountKill, Target: body}
	lv.RemoveThing(body)
	if got := am.thingColor(lv, &chaser); got != am.tick.pulses.inactive.Color() {
		t.Errorf("Expected idle color once the target is gone, got %d", got)
	}
}
