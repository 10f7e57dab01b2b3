package automap

import (
	"testing"

	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/vmath"
)

// unitScale is one frame pixel per world unit
const unitScale vmath.Fixed = 1 << 20

// newViewport builds a viewport over a square level of the given size in world units
func newViewport(fw, fh, size int) *Viewport {
	v := &Viewport{}
	v.SetFrame(fw, fh, false)
	v.SetBounds(level.Bounds{MaxX: fx(size), MaxY: fx(size)})
	return v
}

func TestScaleReciprocal(t *testing.T) {
	v := newViewport(320, 200, 4096)
	for _, s := range []vmath.Fixed{v.MinScale, unitScale / 3, unitScale, unitScale * 5 / 2, v.MaxScale} {
		v.SetScale(s)
		prod := int64(v.ScaleMtoF) * int64(v.ScaleFtoM)
		if diff := vmath.Abs64(prod - 1<<32); diff >= int64(v.ScaleMtoF) {
			t.Errorf("Scale %d: expected ftom*mtof within one ulp of 1, off by %d", s, diff)
		}
	}
}

func TestFTOMRoundTrip(t *testing.T) {
	v := newViewport(320, 200, 4096)
	for _, s := range []vmath.Fixed{v.MinScale, unitScale, v.MaxScale} {
		v.SetScale(s)
		// Within two pixels for any distance that fits the frame
		tol := v.FTOM(2)
		for _, x := range []int64{0, v.FTOM(1) / 2, v.FTOM(37) + 5, v.FTOM(300) + 7, -v.FTOM(13) - 3} {
			got := v.FTOM(v.MTOF(x))
			if vmath.Abs64(got-x) > tol {
				t.Errorf("Scale %d: FTOM(MTOF(%d)) = %d, outside %d", s, x, got, tol)
			}
		}
	}
}

func TestSetScaleSaturates(t *testing.T) {
	v := newViewport(320, 200, 1000)

	tests := []struct {
		name string
		in   vmath.Fixed
		want vmath.Fixed
	}{
		{"far above max", v.MaxScale * 4, v.MaxScale},
		{"just above max", v.MaxScale + 1, v.MaxScale},
		{"at max", v.MaxScale, v.MaxScale},
		{"below min", v.MinScale / 2, v.MinScale},
		{"zero", 0, v.MinScale},
		{"in range", unitScale, unitScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.SetScale(tt.in)
			if v.ScaleMtoF != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, v.ScaleMtoF)
			}
			v.SetScale(tt.in)
			if v.ScaleMtoF != tt.want {
				t.Errorf("Expected repeated call to stay at %d, got %d", tt.want, v.ScaleMtoF)
			}
		})
	}
}

func TestZoomLimitsFromBounds(t *testing.T) {
	v := newViewport(320, 200, 1000)
	// Entry scale is min/0.7
	want := vmath.FixedDiv(v.MinScale, initialZoom)
	if v.ScaleMtoF != want {
		t.Errorf("Expected entry scale %d, got %d", want, v.ScaleMtoF)
	}
	// The whole level fits the shorter axis at minimum zoom
	v.SetScale(v.MinScale)
	if got := v.MTOF(u(1000)); got > 200 || got < 199 {
		t.Errorf("Expected level height to fill about 200 px at min scale, got %d", got)
	}
	v.SetScale(v.MaxScale)
	if got := v.MTOF(2 * PlayerRadius); got != 200 {
		t.Errorf("Expected player diameter to fill the frame at max scale, got %d", got)
	}
}

func TestZoomKeepsCenter(t *testing.T) {
	v := newViewport(320, 200, 4096)
	v.SetScale(unitScale)
	v.CenterOn(MapPoint{u(1000), u(2000)})
	before := v.Center()

	v.Zoom(vmath.FromFloat(1.5))
	after := v.Center()
	if vmath.Abs64(after.X-before.X) > 1 || vmath.Abs64(after.Y-before.Y) > 1 {
		t.Errorf("Expected center kept, got (%d,%d) from (%d,%d)", after.X, after.Y, before.X, before.Y)
	}
	if v.W >= u(320) {
		t.Errorf("Expected narrower window after zoom in, got %d", v.W)
	}
}

func TestPanClampsAtLevelEdge(t *testing.T) {
	// Half-width 600 units over a 1000 unit level
	v := newViewport(1200, 200, 1000)
	v.SetScale(unitScale)
	v.CenterOn(MapPoint{u(500), u(500)})
	if v.W/2 != u(600) {
		t.Fatalf("Expected half width of 600 units, got %d", v.W/2>>vmath.MapBits)
	}

	prev := v.Center().X
	for i := 0; i < 20; i++ {
		v.Pan(-u(100), 0)
		c := v.Center().X
		if c > prev {
			t.Fatalf("Pan left moved right: %d -> %d", prev, c)
		}
		if c < v.Min.X {
			t.Fatalf("Center passed the level edge: %d", c)
		}
		prev = c
	}
	if prev != v.Min.X {
		t.Errorf("Expected center to stop at the level edge %d, got %d", v.Min.X, prev)
	}

	// The other axis and direction clamp independently
	for i := 0; i < 20; i++ {
		v.Pan(u(100), u(100))
	}
	c := v.Center()
	if c.X != v.Max.X || c.Y != v.Max.Y {
		t.Errorf("Expected center at upper corner, got (%d,%d)", c.X, c.Y)
	}
}

func TestSnapshotRestoreExact(t *testing.T) {
	v := newViewport(320, 200, 4096)
	v.SetScale(unitScale + 12345)
	v.CenterOn(MapPoint{u(777) + 3, u(1234) + 5})
	saved := v.Snapshot()
	x, y, s := v.X, v.Y, v.ScaleMtoF

	v.MinOut()
	v.Pan(u(300), -u(200))
	v.Restore(saved)

	if v.X != x || v.Y != y || v.ScaleMtoF != s {
		t.Errorf("Expected exact restore (%d,%d,%d), got (%d,%d,%d)", x, y, s, v.X, v.Y, v.ScaleMtoF)
	}
}

func TestSquareAspect(t *testing.T) {
	v := &Viewport{}
	v.SetFrame(320, 200, true)
	v.SetBounds(level.Bounds{MaxX: fx(1000), MaxY: fx(1000)})
	v.SetScale(unitScale)
	if v.H != u(240) {
		t.Errorf("Expected 240 units of height in 200 rows, got %d", v.H>>vmath.MapBits)
	}
	if got := v.CYMTOF(v.Y2()); got != 0 {
		t.Errorf("Expected top edge on row 0, got %d", got)
	}
	if got := v.CYMTOF(v.Y); got != 200 {
		t.Errorf("Expected bottom edge on row 200, got %d", got)
	}
}

func TestLerpViewport(t *testing.T) {
	prev := newViewport(320, 200, 4096)
	prev.SetScale(unitScale)
	prev.CenterOn(MapPoint{u(1000), u(1000)})
	cur := *prev
	cur.SetScale(unitScale * 2)
	cur.CenterOn(MapPoint{u(1100), u(1000)})

	mid := lerpViewport(prev, &cur, vmath.FracUnit/2)
	if mid.ScaleMtoF != unitScale*3/2 {
		t.Errorf("Expected halfway scale, got %d", mid.ScaleMtoF)
	}
	if c := mid.Center(); vmath.Abs64(c.X-u(1050)) > 1 {
		t.Errorf("Expected halfway center, got %d", c.X>>vmath.MapBits)
	}

	end := lerpViewport(prev, &cur, vmath.FracUnit)
	if end != cur {
		t.Errorf("Expected full fraction to return the current view")
	}
}
