package sshhost

import (
	"io"
	"time"

	"github.com/lixenwraith/automap/engine"
	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/terminal"
)

// escTimeout releases a lone ESC that no sequence followed
const escTimeout = 50 * time.Millisecond

var (
	statusFg = terminal.RGB{R: 255, G: 255, B: 255}
	statusBg = terminal.RGB{}
)

// conn is one remote terminal showing one session
// All methods run on the session goroutine
type conn struct {
	session *host.Session
	loop    *engine.Loop
	dec     *terminal.Decoder
	rel     *input.Releaser
	out     *terminal.Writer
	debug   bool

	cells      []terminal.Cell
	cols, rows int
	mouse      [2]int
	lastInput  time.Time
}

func newConn(s *host.Session, w io.Writer, mode terminal.ColorMode, cols, rows int, uncapped, debug bool) *conn {
	c := &conn{
		session: s,
		loop:    engine.NewLoop(s, uncapped),
		dec:     terminal.NewDecoder(),
		rel:     input.NewReleaser(),
		out:     terminal.NewWriter(w, mode),
		debug:   debug,
	}
	c.resize(cols, rows)
	return c
}

// resize fits the session to cols x rows cells, keeping the bottom row for status text
func (c *conn) resize(cols, rows int) {
	c.cols, c.rows = max(cols, 1), max(rows, 2)
	c.cells = make([]terminal.Cell, c.cols*c.rows)
	c.session.Resize(c.cols, (c.rows-1)*2)
	c.session.FB.MarkRect(0, 0, c.session.FB.Width, c.session.FB.Height)
}

// feed decodes raw input and reports whether the viewer asked to quit
func (c *conn) feed(data []byte, now time.Time) bool {
	c.lastInput = now
	return c.dispatch(c.dec.Feed(data), now)
}

func (c *conn) dispatch(events []terminal.Event, now time.Time) bool {
	for _, tev := range events {
		ev, ok := input.FromTerminal(tev, &c.mouse)
		if !ok {
			continue
		}
		switch ev.Type {
		case input.EventKeyDown:
			if !c.rel.Press(ev, now) {
				continue
			}
		case input.EventDrag:
			// A cell is two pixels tall
			ev.DY *= 2
		}
		if c.session.Handle(ev) {
			return true
		}
	}
	return false
}

// frame resolves stalled escapes, releases expired keys, runs due tics and writes the frame
func (c *conn) frame(now time.Time) (bool, error) {
	if c.dec.Pending() && now.Sub(c.lastInput) >= escTimeout {
		if c.dispatch(c.dec.Flush(), now) {
			return true, nil
		}
	}
	for _, ev := range c.rel.Expire(now) {
		if c.session.Handle(ev) {
			return true, nil
		}
	}
	c.loop.Frame()
	return false, c.present()
}

// present converts the framebuffer to half block cells and flushes the changes
func (c *conn) present() error {
	s := c.session
	if _, dirty := s.FB.Dirty(); dirty {
		bg := s.Map.Ruleset().Colors.Background
		render.HalfBlocks(s.FB, s.Pal, bg, func(x, y int, cell render.HalfBlockCell) {
			if x >= c.cols || y >= c.rows-1 {
				return
			}
			c.cells[y*c.cols+x] = terminal.Cell{
				Rune: render.UpperHalfBlock,
				Fg:   terminal.RGB(cell.Top),
				Bg:   terminal.RGB(cell.Bottom),
			}
		})
		s.FB.ClearDirty()
	}

	text := s.Message()
	if text == "" && c.debug {
		text = s.Reg.Line()
	}
	row := c.cells[(c.rows-1)*c.cols:]
	runes := []rune(text)
	for x := range row {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		row[x] = terminal.Cell{Rune: r, Fg: statusFg, Bg: statusBg}
	}
	return c.out.Flush(c.cells, c.cols, c.rows)
}
