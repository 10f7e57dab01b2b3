package terminal

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y"
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0

	for _, b := range data {
		switch {
		case b == ';':
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			default:
				return 0, 0, 0, false
			}
			state++
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}

	if state != 2 {
		return 0, 0, 0, false
	}
	return btn, x, val, true
}

// decodeSGRButton maps the SGR button byte and final character to an event
// Bits 0-1 select the button, bit 5 flags motion and bit 6 flags the wheel
func decodeSGRButton(btn int, release bool) (MouseButton, MouseAction, Modifier) {
	var mod Modifier
	if btn&4 != 0 {
		mod |= ModShift
	}
	if btn&8 != 0 {
		mod |= ModAlt
	}
	if btn&16 != 0 {
		mod |= ModCtrl
	}

	id := btn & 0x03
	if btn&64 != 0 {
		if id == 0 {
			return MouseBtnWheelUp, MouseActionPress, mod
		}
		return MouseBtnWheelDown, MouseActionPress, mod
	}

	var b MouseButton
	switch id {
	case 0:
		b = MouseBtnLeft
	case 1:
		b = MouseBtnMiddle
	case 2:
		b = MouseBtnRight
	}

	switch {
	case release:
		return b, MouseActionRelease, mod
	case btn&32 != 0 && b != MouseBtnNone:
		return b, MouseActionDrag, mod
	case btn&32 != 0:
		return b, MouseActionMove, mod
	}
	return b, MouseActionPress, mod
}
