package terminal

import "unicode/utf8"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize // produced by hosts, never by the byte decoder
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	Width  int // EventResize
	Height int

	MouseX      int // 0-indexed cell
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// Decoder turns a raw input byte stream into events
// Partial sequences are held until the next Feed; a lone ESC is released by Flush
type Decoder struct {
	buf []byte
	out []Event
}

// NewDecoder returns an empty decoder
func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, 64)}
}

// Feed appends data and returns every complete event; the returned slice is reused by the next call
func (d *Decoder) Feed(data []byte) []Event {
	d.out = d.out[:0]
	d.buf = append(d.buf, data...)

	consumed := d.parse(d.buf)
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
	} else if consumed > 0 {
		n := copy(d.buf, d.buf[consumed:])
		d.buf = d.buf[:n]
	}
	return d.out
}

// Flush resolves input that stalled mid-sequence, called after the escape timeout expires
// A pending ESC becomes the Escape key, anything else is discarded
func (d *Decoder) Flush() []Event {
	d.out = d.out[:0]
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		d.emit(Event{Type: EventKey, Key: KeyEscape})
	}
	d.buf = d.buf[:0]
	return d.out
}

// Pending reports whether bytes are waiting for the rest of a sequence
func (d *Decoder) Pending() bool {
	return len(d.buf) > 0
}

func (d *Decoder) emit(ev Event) {
	d.out = append(d.out, ev)
}

// parse emits events and returns bytes consumed, stopping on an incomplete sequence
func (d *Decoder) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b == ' ':
			d.emit(Event{Type: EventKey, Key: KeySpace, Rune: ' '})
			i++

		case b > 0x20 && b < 0x7f:
			d.emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i
			}
			consumed, ev, ok := d.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ok {
				d.emit(ev)
			}
			i += consumed

		case b < 0x20:
			d.emit(controlEvent(b))
			i++

		case b == 0x7f:
			d.emit(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError || size > 1 {
				d.emit(Event{Type: EventKey, Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return i
}

// parseEscape returns consumed bytes, the event and whether it should be emitted
// Zero consumed means the sequence is incomplete
func (d *Decoder) parseEscape(data []byte) (int, Event, bool) {
	switch c := data[1]; {
	case c == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}, true
	case c == '[':
		return parseCSI(data)
	case c == 'O':
		return parseSS3(data)
	case c < 0x20:
		ev := controlEvent(c)
		ev.Modifiers |= ModAlt
		return 2, ev, true
	case c < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(c), Modifiers: ModAlt}, true
	}
	// ESC followed by a non-ASCII byte: report the ESC alone
	return 1, Event{Type: EventKey, Key: KeyEscape}, true
}

func isFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

const maxCSILen = 32

func parseCSI(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	end := 2
	for end < len(data) && end < maxCSILen {
		b := data[end]
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer
			return end, Event{}, false
		}
		end++
		if isFinal(b) {
			if key, mod, ok := lookupCSI(data[2:end]); ok {
				return end, Event{Type: EventKey, Key: key, Modifiers: mod}, true
			}
			return end, Event{}, false
		}
	}
	if end >= maxCSILen {
		return end, Event{}, false
	}
	return 0, Event{}, false
}

func parseSS3(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	c := data[2]
	if s, ok := ss3Map[c]; ok {
		return 3, Event{Type: EventKey, Key: s.key, Modifiers: s.mod}, true
	}
	if r, ok := ss3Keypad[c]; ok {
		return 3, Event{Type: EventKey, Key: KeyRune, Rune: r}, true
	}
	return 3, Event{}, false
}

// parseSGRMouse handles ESC [ < Btn ; X ; Y M|m
func parseSGRMouse(data []byte) (int, Event, bool) {
	end := 3
	for end < len(data) && end < maxCSILen {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= maxCSILen {
		return end, Event{}, false
	}
	if end >= len(data) {
		return 0, Event{}, false
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, Event{}, false
	}
	b, action, mod := decodeSGRButton(btn, data[end] == 'm')
	return end + 1, Event{
		Type:        EventMouse,
		MouseX:      x - 1,
		MouseY:      y - 1,
		MouseBtn:    b,
		MouseAction: action,
		Modifiers:   mod,
	}, true
}

// controlEvent maps C0 control bytes to keys
func controlEvent(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{Type: EventKey, Key: KeyNone}
}
