package level

import (
	"testing"

	"github.com/lixenwraith/automap/vmath"
)

func TestThingHandles(t *testing.T) {
	lv := &Level{}
	a := lv.AddThing(Thing{X: vmath.FromInt(1), Health: 10, Target: NoThing})
	b := lv.AddThing(Thing{X: vmath.FromInt(2), Health: 10, Target: a})

	if got := lv.Thing(b); got == nil || got.Target != a {
		t.Fatalf("Expected thing %d targeting %d", b, a)
	}
	if !lv.HasLiveTarget(lv.Thing(b)) {
		t.Errorf("Expected live target")
	}

	lv.RemoveThing(a)
	if lv.Thing(a) != nil {
		t.Errorf("Expected removed handle to resolve to nil")
	}
	if lv.HasLiveTarget(lv.Thing(b)) {
		t.Errorf("Expected stale target to be treated as absent")
	}
	if lv.Thing(NoThing) != nil || lv.Thing(99) != nil {
		t.Errorf("Expected invalid handles to resolve to nil")
	}
}

func TestAddThingSeedsPrevious(t *testing.T) {
	lv := &Level{}
	id := lv.AddThing(Thing{X: vmath.FromInt(5), Y: vmath.FromInt(6), Angle: vmath.Ang90})
	th := lv.Thing(id)
	if th.PrevX != th.X || th.PrevY != th.Y || th.PrevAngle != th.Angle {
		t.Errorf("Expected previous position equal to spawn position")
	}
}

func TestBounds(t *testing.T) {
	lv := &Level{Vertices: []Vertex{
		{X: vmath.FromInt(-10), Y: vmath.FromInt(5)},
		{X: vmath.FromInt(30), Y: vmath.FromInt(-7)},
	}}
	b := lv.Bounds()
	if b.MinX != vmath.FromInt(-10) || b.MaxX != vmath.FromInt(30) || b.MinY != vmath.FromInt(-7) || b.MaxY != vmath.FromInt(5) {
		t.Errorf("Expected bounds (-10,-7)-(30,5), got %+v", b)
	}
	if (&Level{}).Bounds() != (Bounds{}) {
		t.Errorf("Expected zero bounds for empty level")
	}
}

func TestStateTickInterpolation(t *testing.T) {
	lv := &Level{}
	body := lv.AddThing(Thing{Health: 100, Player: 0})
	st := NewState(lv, body)
	st.Wander = true

	st.Tick()
	cam := st.Camera()
	if cam.PrevX != 0 || cam.X == 0 {
		t.Fatalf("Expected body to move from origin, got prev=%d cur=%d", cam.PrevX, cam.X)
	}
	x, _, _ := cam.Position(vmath.FracUnit / 2)
	if x <= cam.PrevX || x >= cam.X {
		t.Errorf("Expected half-tic position strictly between, got %d", x)
	}
	if st.LevelTime() != 1 {
		t.Errorf("Expected level time 1, got %d", st.LevelTime())
	}
}

func TestExplicitView(t *testing.T) {
	lv := &Level{}
	st := NewState(lv, lv.AddThing(Thing{}))
	st.View = &Camera{X: vmath.FromInt(64), Spectating: true}
	st.Tick()
	cam := st.Camera()
	if !cam.Spectating || cam.PrevX != vmath.FromInt(64) {
		t.Errorf("Expected explicit view with saved previous, got %+v", cam)
	}
}

func TestMarkAllMapped(t *testing.T) {
	lv := &Level{Lines: make([]Line, 3)}
	lv.MarkAllMapped()
	for i, l := range lv.Lines {
		if l.Flags&LineMapped == 0 {
			t.Errorf("Expected line %d mapped", i)
		}
	}
}
