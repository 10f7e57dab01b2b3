package input

import (
	"maps"
	"unicode"

	"github.com/lixenwraith/automap/terminal"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Named keys (arrows, Tab, Ctrl+*, modifier pseudo-keys)
	Keys map[terminal.Key]IntentType

	// Printable characters, matched case-sensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[terminal.Key]IntentType{
			terminal.KeyTab:   IntentToggleMap,
			terminal.KeyLeft:  IntentPanLeft,
			terminal.KeyRight: IntentPanRight,
			terminal.KeyUp:    IntentPanUp,
			terminal.KeyDown:  IntentPanDown,
			terminal.KeyShift: IntentSpeed,
			terminal.KeyCtrlC: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'-': IntentZoomOut,
			'_': IntentZoomOut,
			'=': IntentZoomIn,
			'+': IntentZoomIn,
			'0': IntentGoBig,
			'f': IntentFollow,
			'g': IntentGrid,
			'm': IntentMark,
			'c': IntentClearMark,
			'r': IntentRotate,
			'o': IntentOverlay,
			'q': IntentQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its bound intent
func (kt *KeyTable) Lookup(ev Event) IntentType {
	if ev.Rune != 0 {
		if t, ok := kt.Runes[ev.Rune]; ok {
			return t
		}
		// Terminals fold Shift into the letter
		if unicode.IsUpper(ev.Rune) {
			if t, ok := kt.Runes[unicode.ToLower(ev.Rune)]; ok {
				return t
			}
		}
		if ev.Key == terminal.KeyRune {
			return IntentNone
		}
	}
	return kt.Keys[ev.Key]
}
