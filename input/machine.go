package input

import (
	"unicode"

	"github.com/lixenwraith/automap/terminal"
)

// CheatSequence typed while the automap is open cycles the reveal level
const CheatSequence = "iddt"

// Machine parses Events into Intents
// It tracks the held run modifier and the cheat sequence across events
type Machine struct {
	keyTable *KeyTable

	speedHeld bool
	cheat     []rune
}

// NewMachine creates a machine over a key table, nil selects the defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		keyTable: kt,
		cheat:    make([]rune, 0, len(CheatSequence)),
	}
}

// KeyTable returns the active bindings
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// SetKeyTable swaps bindings and forgets held state
func (m *Machine) SetKeyTable(kt *KeyTable) {
	m.keyTable = kt
	m.Reset()
}

// Reset clears the held modifier and any partial cheat
func (m *Machine) Reset() {
	m.speedHeld = false
	m.cheat = m.cheat[:0]
}

// Process returns the intent for an event, nil when the event maps to nothing
func (m *Machine) Process(ev Event) *Intent {
	switch ev.Type {
	case EventResize:
		return &Intent{Type: IntentResize, Width: ev.Width, Height: ev.Height}
	case EventWheel:
		if ev.WheelDelta == 0 {
			return nil
		}
		return &Intent{Type: IntentZoomWheel, Pressed: true, Wheel: ev.WheelDelta, Speed: m.speed(ev)}
	case EventDrag:
		return &Intent{Type: IntentDrag, Pressed: true, DX: ev.DX, DY: ev.DY}
	case EventKeyDown:
		return m.processKey(ev, true)
	case EventKeyUp:
		return m.processKey(ev, false)
	}
	return nil
}

func (m *Machine) speed(ev Event) bool {
	return m.speedHeld || ev.Mods&terminal.ModShift != 0 ||
		(ev.Key == terminal.KeyRune && unicode.IsUpper(ev.Rune))
}

func (m *Machine) processKey(ev Event, pressed bool) *Intent {
	if pressed && m.feedCheat(ev) {
		return &Intent{Type: IntentCheat, Pressed: true}
	}

	t := m.keyTable.Lookup(ev)
	if t == IntentSpeed {
		m.speedHeld = pressed
	}
	if t == IntentNone {
		return nil
	}
	// Toggles fire on press only
	if !pressed && !t.Held() {
		return nil
	}
	return &Intent{Type: t, Pressed: pressed, Speed: m.speed(ev)}
}

// feedCheat advances the sequence matcher and reports completion
func (m *Machine) feedCheat(ev Event) bool {
	if ev.Key != terminal.KeyRune {
		return false
	}
	m.cheat = append(m.cheat, ev.Rune)
	if len(m.cheat) > len(CheatSequence) {
		n := copy(m.cheat, m.cheat[1:])
		m.cheat = m.cheat[:n]
	}
	if string(m.cheat) == CheatSequence {
		m.cheat = m.cheat[:0]
		return true
	}
	return false
}
