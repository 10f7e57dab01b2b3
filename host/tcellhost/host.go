// Package tcellhost runs an automap session in a local terminal through tcell
// Each terminal cell shows two framebuffer pixels as an upper half block
package tcellhost

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/automap/engine"
	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/render"
)

// frameInterval paces presentation at about 60 FPS
const frameInterval = 16 * time.Millisecond

// Host drives one session on a tcell screen
type Host struct {
	screen  tcell.Screen
	session *host.Session
	loop    *engine.Loop
	rel     *input.Releaser
	debug   bool

	cols, rows int
	dragging   bool
	lastX      int
	lastY      int
}

// New sizes the session to the screen; the bottom row is kept for status text
func New(screen tcell.Screen, s *host.Session, uncapped, debug bool) *Host {
	h := &Host{
		screen:  screen,
		session: s,
		loop:    engine.NewLoop(s, uncapped),
		rel:     input.NewReleaser(),
		debug:   debug,
	}
	screen.EnableMouse()
	screen.EnableFocus()
	h.resize(screen.Size())
	return h
}

// Run polls input and presents frames until a quit key or ctx ends
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if h.handleEvent(ev, time.Now()) {
				log.Printf("tcellhost: quit")
				return nil
			}

		case now := <-ticker.C:
			if h.frame(now) {
				return nil
			}
		}
	}
}

// frame releases expired keys, runs due tics and presents the result
func (h *Host) frame(now time.Time) bool {
	for _, ev := range h.rel.Expire(now) {
		if h.session.Handle(ev) {
			return true
		}
	}
	h.loop.Frame()
	h.present()
	return false
}

// handleEvent translates one tcell event and reports whether to quit
func (h *Host) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in, ok := translateKey(ev)
		if !ok || !h.rel.Press(in, now) {
			return false
		}
		return h.session.Handle(in)

	case *tcell.EventMouse:
		return h.handleMouse(ev)

	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			for _, up := range h.rel.ReleaseAll() {
				h.session.Handle(up)
			}
		}
	}
	return false
}

// handleMouse turns the wheel into zoom and a left drag into pan
// Vertical motion is doubled since a cell is two pixels tall
func (h *Host) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		return h.session.Handle(input.Event{Type: input.EventWheel, WheelDelta: 1, Mods: translateMods(ev.Modifiers())})
	case btn&tcell.WheelDown != 0:
		return h.session.Handle(input.Event{Type: input.EventWheel, WheelDelta: -1, Mods: translateMods(ev.Modifiers())})
	case btn&tcell.Button1 != 0:
		if !h.dragging {
			h.dragging = true
			h.lastX, h.lastY = x, y
			return false
		}
		dx, dy := x-h.lastX, (y-h.lastY)*2
		h.lastX, h.lastY = x, y
		if dx == 0 && dy == 0 {
			return false
		}
		return h.session.Handle(input.Event{Type: input.EventDrag, DX: dx, DY: dy})
	}
	h.dragging = false
	return false
}

func (h *Host) resize(cols, rows int) {
	h.cols, h.rows = max(cols, 1), max(rows, 2)
	h.session.Resize(h.cols, (h.rows-1)*2)
	log.Printf("tcellhost: resize %dx%d cells", h.cols, h.rows)
}

// present copies dirty framebuffer contents to the screen and writes the status row
func (h *Host) present() {
	s := h.session
	if _, dirty := s.FB.Dirty(); dirty {
		bg := s.Map.Ruleset().Colors.Background
		render.HalfBlocks(s.FB, s.Pal, bg, func(x, y int, cell render.HalfBlockCell) {
			style := tcell.StyleDefault.
				Foreground(rgbColor(cell.Top)).
				Background(rgbColor(cell.Bottom))
			h.screen.SetContent(x, y, render.UpperHalfBlock, nil, style)
		})
		s.FB.ClearDirty()
	}

	text := s.Message()
	if text == "" && h.debug {
		text = s.Reg.Line()
	}
	h.drawStatus(text)
	h.screen.Show()
}

func (h *Host) drawStatus(text string) {
	y := h.rows - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(text)
	for x := 0; x < h.cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		h.screen.SetContent(x, y, r, nil, style)
	}
}

func rgbColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
