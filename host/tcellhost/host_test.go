package tcellhost

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/terminal"
	"github.com/lixenwraith/automap/vmath"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	st, pal, err := host.LoadWorld(host.Source{})
	if err != nil {
		t.Fatalf("LoadWorld failed: %v", err)
	}
	s, err := host.NewSession(st, pal, config.Default(), nil, 10, 10)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return New(screen, s, false, false), screen
}

func statusText(screen tcell.Screen, y, n int) string {
	var b strings.Builder
	for x := 0; x < n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone),
			input.RuneDown('g')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			input.Event{Type: input.EventKeyDown, Key: terminal.KeySpace, Rune: ' '}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
			input.KeyDown(terminal.KeyTab)},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift),
			input.Event{Type: input.EventKeyDown, Key: terminal.KeyLeft, Mods: terminal.ModShift}},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			input.Event{Type: input.EventKeyDown, Key: terminal.KeyCtrlC, Mods: terminal.ModCtrl}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone),
			input.KeyDown(terminal.KeyPageDown)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.ev)
			if !ok || got != tt.want {
				t.Errorf("Expected %+v, got %+v (ok=%v)", tt.want, got, ok)
			}
		})
	}

	if _, ok := translateKey(tcell.NewEventKey(tcell.KeyPrint, 0, tcell.ModNone)); ok {
		t.Errorf("Expected unmapped key to be dropped")
	}
}

func TestNewSizesSessionToScreen(t *testing.T) {
	h, _ := newTestHost(t)
	if h.session.FB.Width != 80 || h.session.FB.Height != 46 {
		t.Errorf("Expected 80x46 framebuffer, got %dx%d", h.session.FB.Width, h.session.FB.Height)
	}

	h.handleEvent(tcell.NewEventResize(40, 11), time.Now())
	if h.session.FB.Width != 40 || h.session.FB.Height != 20 {
		t.Errorf("Expected 40x20 framebuffer after resize, got %dx%d", h.session.FB.Width, h.session.FB.Height)
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	h, screen := newTestHost(t)
	h.session.Tick()
	h.session.Draw(vmath.FracUnit)
	h.present()

	r, _, style, _ := screen.GetContent(0, 0)
	if r != render.UpperHalfBlock {
		t.Fatalf("Expected half block, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	pal := h.session.Pal
	want := pal[h.session.FB.At(0, 0)]
	if fg != rgbColor(want) {
		t.Errorf("Expected top pixel color %v, got %v", rgbColor(want), fg)
	}
	if bg != rgbColor(pal[h.session.FB.At(0, 1)]) {
		t.Errorf("Expected bottom pixel color as background")
	}
	if _, dirty := h.session.FB.Dirty(); dirty {
		t.Errorf("Expected dirty region consumed by present")
	}
}

func TestKeysReachSession(t *testing.T) {
	h, screen := newTestHost(t)
	now := time.Now()

	if h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), now) {
		t.Fatalf("Expected no quit on grid key")
	}
	if !h.session.Map.Mode().Grid {
		t.Errorf("Expected grid on")
	}
	h.present()
	if got := statusText(screen, 23, 7); got != "Grid ON" {
		t.Errorf("Expected status row %q, got %q", "Grid ON", got)
	}

	// Autorepeat of a held toggle is swallowed
	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), now.Add(30*time.Millisecond))
	if !h.session.Map.Mode().Grid {
		t.Errorf("Expected autorepeat ignored")
	}

	if !h.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now) {
		t.Errorf("Expected quit on ctrl-c")
	}
}

func TestSynthesizedReleaseStopsZoom(t *testing.T) {
	h, _ := newTestHost(t)
	s := h.session
	now := time.Now()

	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), now)
	before := s.Map.View().ScaleMtoF
	s.Tick()
	if s.Map.View().ScaleMtoF <= before {
		t.Fatalf("Expected zoom in while held")
	}

	h.frame(now.Add(time.Second))
	held := s.Map.View().ScaleMtoF
	s.Tick()
	if s.Map.View().ScaleMtoF != held {
		t.Errorf("Expected zoom to stop after the hold window")
	}
}

func TestMouse(t *testing.T) {
	h, _ := newTestHost(t)
	s := h.session

	before := s.Map.View().ScaleMtoF
	h.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone), time.Now())
	s.Tick()
	if s.Map.View().ScaleMtoF <= before {
		t.Errorf("Expected wheel up to zoom in")
	}

	h.handleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), time.Now())
	h.handleEvent(tcell.NewEventMouse(14, 7, tcell.Button1, tcell.ModNone), time.Now())
	s.Tick()
	if s.Map.Mode().Follow {
		t.Errorf("Expected drag to leave follow mode")
	}
	h.handleEvent(tcell.NewEventMouse(14, 7, tcell.ButtonNone, tcell.ModNone), time.Now())
	if h.dragging {
		t.Errorf("Expected drag to end on button release")
	}
}
