package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/terminal"
)

// keyMap translates tcell named keys
var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
	tcell.KeyCtrlA:      terminal.KeyCtrlA,
	tcell.KeyCtrlB:      terminal.KeyCtrlB,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlD:      terminal.KeyCtrlD,
	tcell.KeyCtrlE:      terminal.KeyCtrlE,
	tcell.KeyCtrlF:      terminal.KeyCtrlF,
	tcell.KeyCtrlG:      terminal.KeyCtrlG,
	tcell.KeyCtrlH:      terminal.KeyCtrlH,
	tcell.KeyCtrlI:      terminal.KeyCtrlI,
	tcell.KeyCtrlJ:      terminal.KeyCtrlJ,
	tcell.KeyCtrlK:      terminal.KeyCtrlK,
	tcell.KeyCtrlL:      terminal.KeyCtrlL,
	tcell.KeyCtrlM:      terminal.KeyCtrlM,
	tcell.KeyCtrlN:      terminal.KeyCtrlN,
	tcell.KeyCtrlO:      terminal.KeyCtrlO,
	tcell.KeyCtrlP:      terminal.KeyCtrlP,
	tcell.KeyCtrlQ:      terminal.KeyCtrlQ,
	tcell.KeyCtrlR:      terminal.KeyCtrlR,
	tcell.KeyCtrlS:      terminal.KeyCtrlS,
	tcell.KeyCtrlT:      terminal.KeyCtrlT,
	tcell.KeyCtrlU:      terminal.KeyCtrlU,
	tcell.KeyCtrlV:      terminal.KeyCtrlV,
	tcell.KeyCtrlW:      terminal.KeyCtrlW,
	tcell.KeyCtrlX:      terminal.KeyCtrlX,
	tcell.KeyCtrlY:      terminal.KeyCtrlY,
	tcell.KeyCtrlZ:      terminal.KeyCtrlZ,
	tcell.KeyCtrlSpace:  terminal.KeyCtrlSpace,
}

// translateKey converts a tcell key press to an automap press
func translateKey(ev *tcell.EventKey) (input.Event, bool) {
	mods := translateMods(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return input.Event{Type: input.EventKeyDown, Key: terminal.KeySpace, Rune: ' ', Mods: mods}, true
		}
		return input.Event{Type: input.EventKeyDown, Key: terminal.KeyRune, Rune: ev.Rune(), Mods: mods}, true
	}
	k, ok := keyMap[ev.Key()]
	if !ok {
		return input.Event{}, false
	}
	return input.Event{Type: input.EventKeyDown, Key: k, Mods: mods}, true
}

func translateMods(m tcell.ModMask) terminal.Modifier {
	var mods terminal.Modifier
	if m&tcell.ModShift != 0 {
		mods |= terminal.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= terminal.ModCtrl
	}
	return mods
}
