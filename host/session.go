package host

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/lixenwraith/automap/automap"
	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/engine"
	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/status"
	"github.com/lixenwraith/automap/vmath"
)

// messageTics is how long a status message stays up
const messageTics = 4 * engine.TicRate

// Session couples one world, one automap and the framebuffer it draws into
// It is the engine.Stepper every front end drives
type Session struct {
	State *level.State
	Map   *automap.Automap
	FB    *render.Framebuffer
	Pal   *render.Palette
	Reg   *status.Registry

	statusRows int
	msg        string
	msgTics    int
	quit       bool
}

// NewSession opens the automap on st, sized to a width x height pixel frame
func NewSession(st *level.State, pal *render.Palette, cfg *config.Config, reg *status.Registry, width, height int) (*Session, error) {
	if reg == nil {
		reg = status.NewRegistry()
	}
	am, err := automap.New(cfg, nil, reg)
	if err != nil {
		return nil, err
	}
	if pal == nil {
		pal = render.DefaultPalette()
	}
	am.SetPalette(pal)

	s := &Session{
		State:      st,
		Map:        am,
		FB:         render.NewFramebuffer(width, height),
		Pal:        pal,
		Reg:        reg,
		statusRows: cfg.StatusBarHeight,
	}
	am.SetMessenger(automap.MessengerFunc(s.setMessage))
	s.Resize(width, height)
	am.Start(st)
	return s, nil
}

// Resize reallocates the framebuffer and fits the automap above the status rows
func (s *Session) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	s.FB.Resize(width, height)
	s.Map.SetWindow(0, 0, width, max(height-s.statusRows, 1))
}

// Tick advances the world and the automap by one tic
func (s *Session) Tick() {
	s.State.Tick()
	s.Map.Tick()
	if s.msgTics > 0 {
		s.msgTics--
		if s.msgTics == 0 {
			s.msg = ""
		}
	}
}

// Draw renders the frame; with the map closed the window shows the background
func (s *Session) Draw(frac vmath.Fixed) {
	if !s.Map.Active() {
		s.FB.Clear(s.Map.Ruleset().Colors.Background)
		s.FB.MarkRect(0, 0, s.FB.Width, s.FB.Height)
		return
	}
	s.Map.Draw(s.FB, frac)
}

// Handle offers one event to the automap and reports whether the host should quit
func (s *Session) Handle(ev input.Event) bool {
	if s.Map.Responder(ev) {
		return s.quit
	}
	if ev.Type == input.EventKeyDown && s.Map.KeyTable().Lookup(ev) == input.IntentQuit {
		s.quit = true
	}
	return s.quit
}

// Quit reports whether a quit key was seen
func (s *Session) Quit() bool { return s.quit }

// Message returns the status message currently shown, if any
func (s *Session) Message() string { return s.msg }

func (s *Session) setMessage(text string) {
	s.msg = text
	s.msgTics = messageTics
	log.Printf("host: %s", text)
}

// LoadMarks restores marks saved by SaveMarks; a missing file leaves the list empty
func (s *Session) LoadMarks(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open marks: %w", err)
	}
	defer f.Close()
	if _, err := s.Map.Marks().ReadFrom(f); err != nil {
		return err
	}
	log.Printf("host: %d marks restored from %s", s.Map.Marks().Len(), path)
	return nil
}

// SaveMarks writes the current marks to path
func (s *Session) SaveMarks(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create marks: %w", err)
	}
	if _, err := s.Map.Marks().WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
