package input

// IntentType discriminates automap actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentToggleMap // open or close the automap
	IntentQuit      // owned by the host, never consumed by the automap

	// Held actions, Intent.Pressed distinguishes press from release
	IntentPanLeft
	IntentPanRight
	IntentPanUp
	IntentPanDown
	IntentZoomIn
	IntentZoomOut
	IntentSpeed // run modifier, selects the fast pan and zoom tier

	// Impulses
	IntentZoomWheel
	IntentDrag
	IntentResize

	// Toggles
	IntentGoBig
	IntentFollow
	IntentGrid
	IntentRotate
	IntentOverlay
	IntentMark
	IntentClearMark
	IntentCheat
)

// Intent is the parsed action handed to the automap responder
type Intent struct {
	Type    IntentType
	Pressed bool // false for key releases
	Speed   bool // run modifier held
	Wheel   int
	DX, DY  int
	Width   int
	Height  int
}

// Held reports intents that stay active between press and release
func (t IntentType) Held() bool {
	switch t {
	case IntentPanLeft, IntentPanRight, IntentPanUp, IntentPanDown,
		IntentZoomIn, IntentZoomOut, IntentSpeed:
		return true
	}
	return false
}
