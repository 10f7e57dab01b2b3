// Package ebitenhost shows an automap session in a desktop window through ebiten
// The framebuffer is expanded to RGBA and written to the screen each frame
package ebitenhost

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/automap/engine"
	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/input"
)

// Game adapts a session to ebiten's update/draw split
// Update polls input and runs due tics; Draw renders at the sub-tic fraction
type Game struct {
	session *host.Session
	loop    *engine.Loop
	scale   int
	debug   bool

	rgba     []byte
	keys     []ebiten.Key
	dragging bool
	lastX    int
	lastY    int
}

// New wraps a session; scale is the window pixels per framebuffer pixel
func New(s *host.Session, uncapped, debug bool, scale int) *Game {
	return &Game{
		session: s,
		loop:    engine.NewLoop(s, uncapped),
		scale:   max(scale, 1),
		debug:   debug,
	}
}

// Run opens the window and blocks until the window closes or a quit key is pressed
func Run(g *Game, title string) error {
	fb := g.session.FB
	ebiten.SetWindowSize(fb.Width*g.scale, fb.Height*g.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update polls input and runs due tics
func (g *Game) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ev, ok := translateKey(k, true, ctrl); ok && g.session.Handle(ev) {
			log.Printf("ebitenhost: quit")
			return ebiten.Termination
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ev, ok := translateKey(k, false, ctrl); ok {
			g.session.Handle(ev)
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		delta := 1
		if dy < 0 {
			delta = -1
		}
		g.session.Handle(input.Event{Type: input.EventWheel, WheelDelta: delta})
	}
	g.updateDrag()

	g.loop.RunTics()
	return nil
}

// updateDrag turns left-button motion into drag events in framebuffer pixels
func (g *Game) updateDrag() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	x, y := ebiten.CursorPosition()
	if !g.dragging {
		g.dragging = true
		g.lastX, g.lastY = x, y
		return
	}
	if dx, dy := x-g.lastX, y-g.lastY; dx != 0 || dy != 0 {
		g.session.Handle(input.Event{Type: input.EventDrag, DX: dx, DY: dy})
	}
	g.lastX, g.lastY = x, y
}

// Draw renders the session and copies it to the screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Render()
	screen.WritePixels(g.pixels())

	text := g.session.Message()
	if text == "" && g.debug {
		text = g.session.Reg.Line()
	}
	if text != "" {
		ebitenutil.DebugPrint(screen, text)
	}
}

// pixels expands the framebuffer into the reusable RGBA buffer
func (g *Game) pixels() []byte {
	fb := g.session.FB
	if n := fb.Width * fb.Height * 4; len(g.rgba) != n {
		g.rgba = make([]byte, n)
	}
	fb.ToRGBA(g.session.Pal, g.rgba)
	fb.ClearDirty()
	return g.rgba
}

// Layout sizes the framebuffer to the window divided by the scale
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/g.scale, 1)
	h := max(outsideHeight/g.scale, 1)
	fb := g.session.FB
	if w != fb.Width || h != fb.Height {
		g.session.Resize(w, h)
		log.Printf("ebitenhost: resize %dx%d", w, h)
	}
	return w, h
}
