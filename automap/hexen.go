package automap

import "github.com/lixenwraith/automap/config"

// Hexen palette
const (
	hexenWall          = 83
	hexenFloorChange   = 96
	hexenCeilingChange = 107
	hexenGrid          = 39
	hexenGrays         = 5 * 8
	hexenWhite         = 4 * 8
)

var hexenColors = Colors{
	Background:    parchment,
	Grid:          hexenGrid,
	Wall:          hexenWall,
	FloorChange:   hexenFloorChange,
	CeilingChange: hexenCeilingChange,
	TwoSided:      hexenGrays,
	Teleport:      hexenFloorChange + 4,
	Exit:          hexenWall + 4,
	Secret:        hexenWhite,
	FoundSecret:   hexenWhite + 4,
	Revealed:      hexenGrays + 4,
	Crosshair:     hexenGrays,
	Mark:          hexenWhite,
	Player:        hexenWhite,
	Players:       [4]uint8{157, 177, 137, 198},
	Invisible:     102,
	Item:          137,
	Thing:         hexenGrays,
	Keys:          [numKeyColors]uint8{157, 198, 137},
}

// HexenRuleset returns the Hexen ruleset
// Hexen has no secret sector special and fades antialiased lines near the border
func HexenRuleset() *Ruleset {
	rs := &Ruleset{
		Name:        config.GameHexen,
		Colors:      hexenColors,
		Pulses:      doomPulses,
		PlayerArrow: SwordArrow,
		ThingShape:  ThinTriangleGuy,
		GridUnit:    DefaultGridUnit,
		EdgeFade:    true,

		IsDecoration: isShortLived,
	}
	rs.Classifier = &SpecialClassifier{
		Colors:        &rs.Colors,
		SecretSpecial: -1,
		Exits:         specialSet(74, 75),
		Teleports:     specialSet(70, 71),
		Locks: lockTable(map[KeyColor][]int16{
			KeyGreen: {13, 83},
		}),
	}
	return rs
}
