package level

import (
	"errors"
	"testing"

	"github.com/lixenwraith/automap/vmath"
)

func TestLoadSceneSquare(t *testing.T) {
	st, err := LoadScene("testdata/square.yaml")
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	lv := st.Level()

	if len(lv.Vertices) != 6 || len(lv.Lines) != 7 || len(lv.Sectors) != 2 || len(lv.Things) != 3 {
		t.Fatalf("Expected 6/7/2/3 vertices/lines/sectors/things, got %d/%d/%d/%d",
			len(lv.Vertices), len(lv.Lines), len(lv.Sectors), len(lv.Things))
	}

	divider := lv.Lines[6]
	if !divider.TwoSided() || divider.Flags&LineTwoSided == 0 {
		t.Errorf("Expected back sector to imply two-sided flag")
	}
	if lv.Lines[3].Flags&LineMapped != 0 {
		t.Errorf("Expected line 3 unmapped")
	}
	if lv.Lines[2].Special != 11 {
		t.Errorf("Expected exit special 11, got %d", lv.Lines[2].Special)
	}

	// Default origin sits 8 units outside the bounds
	if lv.BlockmapOriginX != vmath.FromInt(-8) || lv.BlockmapOriginY != vmath.FromInt(-8) {
		t.Errorf("Expected blockmap origin (-8,-8), got (%d,%d)",
			vmath.ToInt(lv.BlockmapOriginX), vmath.ToInt(lv.BlockmapOriginY))
	}

	body := lv.Thing(0)
	if body.Player != 0 {
		t.Errorf("Expected body linked to slot 0, got %d", body.Player)
	}
	if lv.Thing(2).Radius != vmath.FromInt(20) {
		t.Errorf("Expected default radius 20")
	}
	if !lv.HasLiveTarget(lv.Thing(1)) {
		t.Errorf("Expected monster to have a live target")
	}

	p := st.Players()[st.ConsolePlayer()]
	if !p.HasPower(PowerAllMap) {
		t.Errorf("Expected allmap power")
	}
	cam := st.Camera()
	if cam.X != vmath.FromInt(128) || cam.Angle != vmath.Ang90 {
		t.Errorf("Expected camera on the console body, got x=%d angle=%x", vmath.ToInt(cam.X), cam.Angle)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"vertex range", `
vertices: [[0,0]]
sectors: [{}]
lines: [{v1: 0, v2: 3, front: 0}]
players: [{body: 0}]
things: [{x: 0, y: 0}]
`},
		{"front range", `
vertices: [[0,0],[1,1]]
sectors: [{}]
lines: [{v1: 0, v2: 1, front: 2}]
`},
		{"back range", `
vertices: [[0,0],[1,1]]
sectors: [{}]
lines: [{v1: 0, v2: 1, front: 0, back: 4}]
`},
		{"line flag", `
vertices: [[0,0],[1,1]]
sectors: [{}]
lines: [{v1: 0, v2: 1, front: 0, flags: [glowing]}]
`},
		{"thing flag", `
things: [{x: 0, y: 0, flags: [flying]}]
`},
		{"player body", `
things: [{x: 0, y: 0}]
players: [{body: 5}]
`},
		{"power", `
things: [{x: 0, y: 0}]
players: [{body: 0, powers: [flight]}]
`},
		{"console", `
things: [{x: 0, y: 0}]
players: [{body: 0}]
console: 2
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.doc))
			if !errors.Is(err, ErrScene) {
				t.Errorf("Expected ErrScene, got %v", err)
			}
		})
	}
}

func TestParseSceneExplicitOrigin(t *testing.T) {
	doc := `
blockmap_origin: [-100, 64]
vertices: [[0,0],[64,64]]
sectors: [{}]
lines: [{v1: 0, v2: 1, front: 0}]
things: [{x: 0, y: 0}]
players: [{body: 0}]
`
	st, err := ParseScene([]byte(doc))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}
	if st.Map.BlockmapOriginX != vmath.FromInt(-100) || st.Map.BlockmapOriginY != vmath.FromInt(64) {
		t.Errorf("Expected explicit origin kept")
	}
}
