package automap

import "github.com/lixenwraith/automap/config"

// Heretic palette
const (
	hereticReds    = 12 * 8
	hereticGrays   = 5 * 8
	hereticBrowns  = 14 * 8
	hereticYellows = 10 * 8
	hereticWhite   = 4 * 8
	parchment      = 13*8 - 1
)

var hereticColors = Colors{
	Background:    parchment,
	Grid:          hereticGrays + 8,
	Wall:          hereticReds,
	FloorChange:   hereticBrowns,
	CeilingChange: hereticYellows,
	TwoSided:      hereticGrays,
	Teleport:      197,
	Exit:          hereticReds,
	Secret:        hereticWhite,
	FoundSecret:   hereticWhite + 4,
	Revealed:      hereticGrays + 4,
	Crosshair:     hereticGrays,
	Mark:          hereticWhite,
	Player:        hereticWhite,
	Players:       [4]uint8{220, 144, 150, 197},
	Invisible:     102,
	Item:          144,
	Thing:         hereticGrays,
	Keys:          [numKeyColors]uint8{197, 220, 144},
}

// HereticRuleset returns the Heretic ruleset; its third key is green
func HereticRuleset() *Ruleset {
	rs := &Ruleset{
		Name:        config.GameHeretic,
		Colors:      hereticColors,
		Pulses:      doomPulses,
		PlayerArrow: SwordArrow,
		ThingShape:  ThinTriangleGuy,
		GridUnit:    DefaultGridUnit,

		IsDecoration: isShortLived,
	}
	rs.Classifier = &SpecialClassifier{
		Colors:        &rs.Colors,
		SecretSpecial: doomSecretSpecial,
		Exits:         specialSet(11, 51, 52, 105),
		Teleports:     specialSet(39, 97),
		Locks: lockTable(map[KeyColor][]int16{
			KeyBlue:   {26, 32},
			KeyYellow: {27, 34},
			KeyGreen:  {28, 33},
		}),
	}
	return rs
}
