package automap

import (
	"testing"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/vmath"
)

func TestFrameFraction(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	half := vmath.Fixed(vmath.FracUnit / 2)
	quarter := vmath.Fixed(vmath.FracUnit / 4)

	if got := am.frameFraction(half); got != vmath.FracUnit {
		t.Errorf("Expected full fraction before the first tic, got %d", got)
	}

	am.Tick()
	steps := []struct {
		in, want vmath.Fixed
	}{
		{half, half},
		{quarter, half}, // never backwards within a tic
		{vmath.FracUnit * 2, vmath.FracUnit},
		{-5, vmath.FracUnit},
	}
	for i, s := range steps {
		if got := am.frameFraction(s.in); got != s.want {
			t.Errorf("Step %d: expected %d, got %d", i, s.want, got)
		}
	}

	am.Tick()
	if got := am.frameFraction(quarter); got != quarter {
		t.Errorf("Expected new tic to restart the fraction, got %d", got)
	}
}

func TestCappedDrawsTicState(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), func(c *config.Config) { c.Uncapped = false })
	am.Tick()
	if got := am.frameFraction(vmath.FracUnit / 3); got != vmath.FracUnit {
		t.Errorf("Expected capped play to ignore the fraction, got %d", got)
	}
}

func TestTickFollowsPlayer(t *testing.T) {
	am, st, _ := newTestMap(t, testLevel(), nil)
	body := st.Map.Thing(st.Slots[0].Body)

	body.X += fx(64)
	am.Tick()
	c := am.View().Center()
	if vmath.Abs64(c.X-u(320)) > am.View().FTOM(2) {
		t.Errorf("Expected view to follow the player to x=320, got %d", c.X>>vmath.MapBits)
	}
	if am.tick.Prev.Center().X >= c.X {
		t.Errorf("Expected previous view kept for interpolation")
	}
}

func TestTickIdleWhenClosed(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	am.Stop()
	clock := am.tick.Clock
	am.Tick()
	if am.tick.Clock != clock {
		t.Errorf("Expected no tic while closed")
	}
}

func TestRotatedPanFollowsScreen(t *testing.T) {
	am, st, _ := newTestMap(t, testLevel(), nil)
	// Facing east, the screen's up is world east
	st.Map.Thing(st.Slots[0].Body).Angle = 0
	press(am, 'f')
	press(am, 'r')

	before := am.View().Center()
	am.tick.panY = 4
	am.Tick()
	after := am.View().Center()
	if after.X <= before.X {
		t.Errorf("Expected pan up to move east when facing east, got %d -> %d", before.X, after.X)
	}
	if vmath.Abs64(after.Y-before.Y) > am.View().FTOM(1) {
		t.Errorf("Expected no north-south motion, got %d -> %d", before.Y, after.Y)
	}
}
