package automap

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/status"
	"github.com/lixenwraith/automap/vmath"
)

// World is the read-only game state the automap draws
type World interface {
	Level() *level.Level
	Players() []level.Player
	ConsolePlayer() int
	Netgame() bool
	Camera() level.Camera
}

// Messenger shows short status lines such as "Grid ON"
type Messenger interface {
	Message(text string)
}

// MessengerFunc adapts a function to Messenger
type MessengerFunc func(text string)

func (f MessengerFunc) Message(text string) { f(text) }

type metrics struct {
	rejected *atomic.Int64
	drawn    *atomic.Int64
	clipped  *atomic.Int64
	things   *atomic.Int64
	frames   *atomic.Int64
	ticks    *atomic.Int64
	scale    *status.AtomicFloat
	mode     *status.AtomicString
	active   *atomic.Bool
}

func newMetrics(reg *status.Registry) metrics {
	return metrics{
		rejected: reg.Ints.Get(status.PlotRejected),
		drawn:    reg.Ints.Get(status.LinesDrawn),
		clipped:  reg.Ints.Get(status.LinesClipped),
		things:   reg.Ints.Get(status.ThingsDrawn),
		frames:   reg.Ints.Get(status.Frames),
		ticks:    reg.Ints.Get(status.Ticks),
		scale:    reg.Floats.Get(status.Scale),
		mode:     reg.Strings.Get(status.Mode),
		active:   reg.Bools.Get(status.Active),
	}
}

// Automap is one automap instance over one world
type Automap struct {
	cfg     *config.Config
	rules   *Ruleset
	machine *input.Machine
	ctx     input.Context
	msg     Messenger

	world     World
	lastLevel *level.Level
	active    bool

	winX, winY, winW, winH int

	pal   *render.Palette
	ramps *render.Ramps
	dim   *[256]uint8

	tick   TickState
	render RenderState
	marks  Marks

	m metrics
}

// New creates an inactive automap
// A nil ruleset is chosen from the config game and scheme; a nil registry gets a private one
func New(cfg *config.Config, rs *Ruleset, reg *status.Registry) (*Automap, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if rs == nil {
		var err error
		if rs, err = RulesetFor(cfg.Game, cfg.Scheme); err != nil {
			return nil, err
		}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	kt := input.DefaultKeyTable()
	if len(cfg.Keymap) > 0 {
		override, err := input.ParseKeymap(cfg.Keymap)
		if err != nil {
			return nil, fmt.Errorf("automap keymap: %w", err)
		}
		kt = input.MergeKeyTable(kt, override)
	}

	a := &Automap{
		cfg:     cfg,
		rules:   rs,
		machine: input.NewMachine(kt),
		m:       newMetrics(reg),
	}
	a.tick.Mode = Mode{
		Follow:  cfg.Follow,
		Grid:    cfg.Grid,
		Rotate:  cfg.Rotate,
		Overlay: cfg.Overlay,
	}
	a.tick.reset(rs.Pulses)
	a.SetPalette(render.DefaultPalette())
	return a, nil
}

// Ruleset returns the active game rules
func (a *Automap) Ruleset() *Ruleset { return a.rules }

// Config returns the options the automap was built with
func (a *Automap) Config() *config.Config { return a.cfg }

// Active reports whether the map is open
func (a *Automap) Active() bool { return a.active }

// Mode returns the current toggles
func (a *Automap) Mode() Mode { return a.tick.Mode }

// View returns the authoritative viewport
func (a *Automap) View() Viewport { return a.tick.View }

// Cheat returns the effective reveal level: the player's own or the one typed on the map
func (a *Automap) Cheat() level.CheatLevel {
	c := a.tick.Cheat
	if a.world != nil {
		players := a.world.Players()
		if i := a.world.ConsolePlayer(); i >= 0 && i < len(players) {
			c = max(c, players[i].Cheats)
		}
	}
	return c
}

// SetMessenger routes toggle messages, nil discards them
func (a *Automap) SetMessenger(m Messenger) { a.msg = m }

// SetInputContext tells the responder whether chat or a menu owns the keyboard
func (a *Automap) SetInputContext(ctx input.Context) { a.ctx = ctx }

// SetKeyTable replaces the key bindings
func (a *Automap) SetKeyTable(kt *input.KeyTable) { a.machine.SetKeyTable(kt) }

// KeyTable returns the active key bindings
func (a *Automap) KeyTable() *input.KeyTable { return a.machine.KeyTable() }

// SetPalette rebuilds the antialiasing ramps and the overlay dim table
func (a *Automap) SetPalette(pal *render.Palette) {
	c := &a.rules.Colors
	a.pal = pal
	a.ramps = render.NewRamps(pal, c.Background, c.Ramped()...)
	a.dim = nil
	if a.cfg.OverlayDim > 0 && a.cfg.OverlayDim < 1 {
		a.dim = render.DimTable(pal, a.cfg.OverlayDim)
	}
}

// Palette returns the palette the ramps were built from
func (a *Automap) Palette() *render.Palette { return a.pal }

// SetWindow places the automap inside the framebuffer
func (a *Automap) SetWindow(x, y, w, h int) {
	a.winX, a.winY = x, y
	a.winW, a.winH = max(w, 1), max(h, 1)
	a.tick.View.SetFrame(a.winW, a.winH, a.cfg.SquareAspect)
	a.tick.Prev = a.tick.View
}

// Window returns the automap rectangle inside the framebuffer
func (a *Automap) Window() render.Rect {
	return render.Rect{X: a.winX, Y: a.winY, W: a.winW, H: a.winH}
}

// LevelInit binds a new level: marks are cleared and zoom limits derived from its extents
func (a *Automap) LevelInit(w World) {
	a.world = w
	lv := w.Level()
	a.lastLevel = lv
	a.marks.Clear()
	a.tick.Mode.Big = false

	if a.winW == 0 {
		a.SetWindow(0, 0, 320, 200)
	}
	a.tick.View.SetBounds(lv.Bounds())
	a.tick.Prev = a.tick.View
	a.m.scale.SetFixed(a.tick.View.ScaleMtoF)

	log.Printf("automap: level %q bounds (%d,%d)-(%d,%d) scale [%d, %d]",
		lv.Name, a.tick.View.Min.X>>vmath.MapBits, a.tick.View.Min.Y>>vmath.MapBits,
		a.tick.View.Max.X>>vmath.MapBits, a.tick.View.Max.Y>>vmath.MapBits,
		a.tick.View.MinScale, a.tick.View.MaxScale)
}

// Start opens the automap on w, re-initializing if the level changed since the last session
func (a *Automap) Start(w World) {
	if a.active {
		a.Stop()
	}
	if w != a.world || w.Level() != a.lastLevel {
		a.LevelInit(w)
	}

	a.active = true
	a.machine.Reset()
	a.tick.reset(a.rules.Pulses)
	a.tick.View.CenterOn(a.cameraPoint())
	a.tick.Prev = a.tick.View
	a.render.lastClock, a.render.lastFrac = 0, 0

	a.m.active.Store(true)
	a.publishMode()
	log.Printf("automap: start, level %q", a.lastLevel.Name)
}

// Stop closes the automap
func (a *Automap) Stop() {
	if !a.active {
		return
	}
	a.active = false
	a.tick.panX, a.tick.panY = 0, 0
	a.tick.zoomMul = vmath.FracUnit
	a.m.active.Store(false)
	log.Printf("automap: stop")
}

// AddMark drops a numbered mark at the window center
func (a *Automap) AddMark() int {
	return a.marks.Add(a.tick.View.Center())
}

// ClearMarks removes every mark
func (a *Automap) ClearMarks() {
	a.marks.Clear()
}

// Marks exposes the mark list for saving and restoring
func (a *Automap) Marks() *Marks {
	return &a.marks
}

// cameraPoint is the current viewpoint in map space
func (a *Automap) cameraPoint() MapPoint {
	cam := a.world.Camera()
	return pointFromWorld(cam.X, cam.Y)
}

// multiplier scales marks, pan speed and auto thickness with the window height
func (a *Automap) multiplier() int {
	return max(1, a.winH/200)
}

func (a *Automap) message(format string, args ...any) {
	if a.msg != nil {
		a.msg.Message(fmt.Sprintf(format, args...))
	}
}

func (a *Automap) publishMode() {
	var parts []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{a.tick.Mode.Follow, "follow"},
		{a.tick.Mode.Grid, "grid"},
		{a.tick.Mode.Rotate, "rotate"},
		{a.tick.Mode.Overlay, "overlay"},
		{a.tick.Mode.Big, "big"},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if c := a.Cheat(); c > level.CheatNone {
		parts = append(parts, fmt.Sprintf("cheat%d", c))
	}
	a.m.mode.Store(strings.Join(parts, ","))
}
