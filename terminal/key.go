package terminal

import "fmt"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore

	// KeyShift is a modifier pseudo-key; hosts that see modifier presses report it directly,
	// byte streams only ever carry it as ModShift on another key
	KeyShift
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	s := ""
	for _, f := range []struct {
		bit  Modifier
		name string
	}{{ModShift, "shift"}, {ModAlt, "alt"}, {ModCtrl, "ctrl"}} {
		if m&f.bit != 0 {
			if s != "" {
				s += "+"
			}
			s += f.name
		}
	}
	return s
}

type keySeq struct {
	key Key
	mod Modifier
}

// xterm encodes modifiers as 1 + bitmask in the second CSI parameter
func xtermMod(param int) Modifier {
	return Modifier(param - 1)
}

// Letter-terminated CSI keys, ESC [ X or ESC [ 1 ; m X
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// Tilde-terminated CSI keys, ESC [ n ~ or ESC [ n ; m ~
var csiTilde = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// csiMap holds every recognized CSI body (bytes after ESC [) with all eight modifier variants
var csiMap = buildCSIMap()

func buildCSIMap() map[string]keySeq {
	m := make(map[string]keySeq, 256)
	for final, k := range csiFinal {
		if final < 'P' {
			m[string(final)] = keySeq{k, ModNone}
		}
		for p := 2; p <= 8; p++ {
			m[fmt.Sprintf("1;%d%c", p, final)] = keySeq{k, xtermMod(p)}
		}
	}
	for n, k := range csiTilde {
		m[fmt.Sprintf("%d~", n)] = keySeq{k, ModNone}
		for p := 2; p <= 8; p++ {
			m[fmt.Sprintf("%d;%d~", n, p)] = keySeq{k, xtermMod(p)}
		}
	}
	m["Z"] = keySeq{KeyBacktab, ModShift}
	// Linux console function keys
	m["[A"] = keySeq{KeyF1, ModNone}
	m["[B"] = keySeq{KeyF2, ModNone}
	m["[C"] = keySeq{KeyF3, ModNone}
	m["[D"] = keySeq{KeyF4, ModNone}
	m["[E"] = keySeq{KeyF5, ModNone}
	return m
}

// SS3 sequences (ESC O X), application cursor mode and keypad
var ss3Map = map[byte]keySeq{
	'A': {KeyUp, ModNone},
	'B': {KeyDown, ModNone},
	'C': {KeyRight, ModNone},
	'D': {KeyLeft, ModNone},
	'H': {KeyHome, ModNone},
	'F': {KeyEnd, ModNone},
	'P': {KeyF1, ModNone},
	'Q': {KeyF2, ModNone},
	'R': {KeyF3, ModNone},
	'S': {KeyF4, ModNone},
	'M': {KeyEnter, ModNone},
}

// Keypad runes in application mode, ESC O j..y and ESC O X
var ss3Keypad = map[byte]rune{
	'X': '=', 'j': '*', 'k': '+', 'l': ',', 'm': '-', 'n': '.', 'o': '/',
	'p': '0', 'q': '1', 'r': '2', 's': '3', 't': '4',
	'u': '5', 'v': '6', 'w': '7', 'x': '8', 'y': '9',
}

// lookupCSI resolves a CSI body; the string conversion in the map index does not allocate
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}
