package terminal

import (
	"strconv"
	"strings"
)

// Key names used by keymap files; runes are written as themselves
var (
	keyToName = map[Key]string{
		KeyEscape:    "escape",
		KeyEnter:     "enter",
		KeyTab:       "tab",
		KeyBacktab:   "backtab",
		KeyBackspace: "backspace",
		KeyDelete:    "delete",
		KeySpace:     "space",
		KeyUp:        "up",
		KeyDown:      "down",
		KeyLeft:      "left",
		KeyRight:     "right",
		KeyHome:      "home",
		KeyEnd:       "end",
		KeyPageUp:    "page_up",
		KeyPageDown:  "page_down",
		KeyInsert:    "insert",
		KeyShift:     "shift",

		KeyCtrlSpace:        "ctrl_space",
		KeyCtrlBackslash:    "ctrl_backslash",
		KeyCtrlBracketRight: "ctrl_bracket_right",
		KeyCtrlCaret:        "ctrl_caret",
		KeyCtrlUnderscore:   "ctrl_underscore",
	}
	nameToKey = map[string]Key{
		"shift_tab": KeyBacktab,
		"esc":       KeyEscape,
		"return":    KeyEnter,
		"pgup":      KeyPageUp,
		"pgdn":      KeyPageDown,
		"ins":       KeyInsert,
		"del":       KeyDelete,
	}
)

func init() {
	for i := 0; i < 12; i++ {
		keyToName[KeyF1+Key(i)] = "f" + strconv.Itoa(i+1)
	}
	for i := 0; i < 26; i++ {
		keyToName[KeyCtrlA+Key(i)] = "ctrl_" + string(rune('a'+i))
	}
	for k, name := range keyToName {
		nameToKey[name] = k
	}
}

// KeyName returns the keymap name of k, empty for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a keymap name case-insensitively
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[strings.ToLower(name)]
	return k, ok
}
