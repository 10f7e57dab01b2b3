package input

import "github.com/lixenwraith/automap/terminal"

// EventType discriminates host input events
type EventType uint8

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventWheel  // WheelDelta > 0 zooms in
	EventDrag   // DX, DY in window pixels
	EventResize // Width, Height of the new frame
)

// Event is the host-independent input record the automap consumes
// Hosts translate tcell, ebiten or raw terminal input into it
type Event struct {
	Type       EventType
	Key        terminal.Key
	Rune       rune
	Mods       terminal.Modifier
	WheelDelta int
	DX, DY     int
	Width      int
	Height     int
}

// KeyDown builds a press event for a named key
func KeyDown(k terminal.Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUp builds a release event for a named key
func KeyUp(k terminal.Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// RuneDown builds a press event for a printable character
func RuneDown(r rune) Event {
	return Event{Type: EventKeyDown, Key: terminal.KeyRune, Rune: r}
}

// RuneUp builds a release event for a printable character
func RuneUp(r rune) Event {
	return Event{Type: EventKeyUp, Key: terminal.KeyRune, Rune: r}
}

// FromTerminal converts a decoded terminal event to a press, wheel or drag
// Terminals report no releases; pair with a Releaser to synthesize them
func FromTerminal(ev terminal.Event, last *[2]int) (Event, bool) {
	switch ev.Type {
	case terminal.EventKey:
		if ev.Key == terminal.KeyNone {
			return Event{}, false
		}
		return Event{Type: EventKeyDown, Key: ev.Key, Rune: ev.Rune, Mods: ev.Modifiers}, true

	case terminal.EventResize:
		return Event{Type: EventResize, Width: ev.Width, Height: ev.Height}, true

	case terminal.EventMouse:
		switch ev.MouseBtn {
		case terminal.MouseBtnWheelUp:
			return Event{Type: EventWheel, WheelDelta: 1, Mods: ev.Modifiers}, true
		case terminal.MouseBtnWheelDown:
			return Event{Type: EventWheel, WheelDelta: -1, Mods: ev.Modifiers}, true
		}
		if last == nil {
			return Event{}, false
		}
		switch ev.MouseAction {
		case terminal.MouseActionPress:
			*last = [2]int{ev.MouseX, ev.MouseY}
		case terminal.MouseActionDrag:
			dx, dy := ev.MouseX-last[0], ev.MouseY-last[1]
			*last = [2]int{ev.MouseX, ev.MouseY}
			if dx != 0 || dy != 0 {
				return Event{Type: EventDrag, DX: dx, DY: dy}, true
			}
		}
	}
	return Event{}, false
}
