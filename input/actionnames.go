package input

import "sort"

// actionRegistry maps canonical action names used in keymap files to intents
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"toggle_map": IntentToggleMap,
	"quit":       IntentQuit,

	"pan_left":  IntentPanLeft,
	"pan_right": IntentPanRight,
	"pan_up":    IntentPanUp,
	"pan_down":  IntentPanDown,
	"zoom_in":   IntentZoomIn,
	"zoom_out":  IntentZoomOut,
	"speed":     IntentSpeed,

	"go_big":     IntentGoBig,
	"follow":     IntentFollow,
	"grid":       IntentGrid,
	"rotate":     IntentRotate,
	"overlay":    IntentOverlay,
	"mark":       IntentMark,
	"clear_mark": IntentClearMark,
}

var intentNames = func() map[IntentType]string {
	m := make(map[IntentType]string, len(actionRegistry))
	for name, t := range actionRegistry {
		m[t] = name
	}
	return m
}()

// ActionByName resolves an action name
func ActionByName(name string) (IntentType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}

// ActionName returns the keymap name of an intent, empty for intents that cannot be bound
func ActionName(t IntentType) string {
	return intentNames[t]
}

// ActionNames lists bindable actions in sorted order
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
