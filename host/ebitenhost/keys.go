package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/terminal"
)

var namedKeys = map[ebiten.Key]terminal.Key{
	ebiten.KeyTab:        terminal.KeyTab,
	ebiten.KeyEscape:     terminal.KeyEscape,
	ebiten.KeyEnter:      terminal.KeyEnter,
	ebiten.KeySpace:      terminal.KeySpace,
	ebiten.KeyBackspace:  terminal.KeyBackspace,
	ebiten.KeyArrowUp:    terminal.KeyUp,
	ebiten.KeyArrowDown:  terminal.KeyDown,
	ebiten.KeyArrowLeft:  terminal.KeyLeft,
	ebiten.KeyArrowRight: terminal.KeyRight,
	ebiten.KeyPageUp:     terminal.KeyPageUp,
	ebiten.KeyPageDown:   terminal.KeyPageDown,
	ebiten.KeyHome:       terminal.KeyHome,
	ebiten.KeyEnd:        terminal.KeyEnd,
	ebiten.KeyShiftLeft:  terminal.KeyShift,
	ebiten.KeyShiftRight: terminal.KeyShift,
}

var runeKeys = map[ebiten.Key]rune{
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
	ebiten.KeyY: 'y', ebiten.KeyZ: 'z',

	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8',
	ebiten.KeyDigit9: '9',

	ebiten.KeyMinus:      '-',
	ebiten.KeyEqual:      '=',
	ebiten.KeyKPSubtract: '-',
	ebiten.KeyKPAdd:      '+',
}

// translateKey builds the automap event for a physical key edge
// Ctrl+C is reported as the control key so hosts can quit on it
func translateKey(k ebiten.Key, pressed, ctrl bool) (input.Event, bool) {
	typ := input.EventKeyDown
	if !pressed {
		typ = input.EventKeyUp
	}
	if ctrl && k == ebiten.KeyC {
		return input.Event{Type: typ, Key: terminal.KeyCtrlC, Mods: terminal.ModCtrl}, true
	}
	if named, ok := namedKeys[k]; ok {
		return input.Event{Type: typ, Key: named}, true
	}
	if r, ok := runeKeys[k]; ok {
		return input.Event{Type: typ, Key: terminal.KeyRune, Rune: r}, true
	}
	return input.Event{}, false
}
