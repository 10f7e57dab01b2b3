package automap

import (
	"fmt"

	"github.com/lixenwraith/automap/config"
)

// Doom palette bands
const (
	doomReds    = 256 - 5*16
	doomBlues   = 256 - 4*16 + 8
	doomGreens  = 7 * 16
	doomGrays   = 6 * 16
	doomBrowns  = 4 * 16
	doomYellows = 256 - 32 + 7
	doomWhite   = 256 - 47
)

// doomSecretSpecial is the sector special counted as a secret
const doomSecretSpecial = 9

var doomPulses = PulseBands{
	Active:    [2]uint8{176, 183},
	Inactive:  [2]uint8{184, 191},
	Spectator: [2]uint8{80, 95},
}

var doomOriginal = Colors{
	Background:    0,
	Grid:          doomGrays + 8,
	Wall:          doomReds,
	FloorChange:   doomBrowns,
	CeilingChange: doomYellows,
	TwoSided:      doomGrays,
	Teleport:      doomGreens + 8,
	Exit:          160,
	Secret:        252,
	FoundSecret:   251,
	Revealed:      doomGrays + 3,
	Crosshair:     doomGrays,
	Mark:          doomWhite,
	Player:        doomWhite,
	Players:       [4]uint8{doomGreens, doomGrays, doomBrowns, doomReds},
	Invisible:     246,
	Item:          doomYellows,
	Thing:         doomGrays,
	Keys:          [numKeyColors]uint8{doomBlues, doomReds, doomYellows},
}

var doomBoom = Colors{
	Background:    247,
	Grid:          104,
	Wall:          23,
	FloorChange:   55,
	CeilingChange: 215,
	TwoSided:      88,
	Teleport:      119,
	Exit:          23,
	Secret:        252,
	FoundSecret:   251,
	Revealed:      104,
	Crosshair:     208,
	Mark:          208,
	Player:        208,
	Players:       [4]uint8{112, 88, 64, 32},
	Invisible:     246,
	Item:          231,
	Thing:         112,
	Keys:          [numKeyColors]uint8{204, 175, 231},
}

var doomRemaster = Colors{
	Background:    0,
	Grid:          100,
	Wall:          doomReds,
	FloorChange:   doomBrowns,
	CeilingChange: doomYellows,
	TwoSided:      doomGrays,
	Teleport:      doomGreens + 8,
	Exit:          160,
	Secret:        251,
	FoundSecret:   250,
	Revealed:      doomGrays + 3,
	Crosshair:     doomGrays,
	Mark:          doomWhite,
	Player:        doomWhite,
	Players:       [4]uint8{doomGreens, doomGrays, doomBrowns, doomReds},
	Invisible:     246,
	Item:          doomYellows,
	Thing:         doomGrays,
	Keys:          [numKeyColors]uint8{doomBlues, doomReds, doomYellows},
}

var doomJaguar = Colors{
	Background:    0,
	Grid:          99,
	Wall:          32,
	FloorChange:   73,
	CeilingChange: 163,
	TwoSided:      100,
	Teleport:      119,
	Exit:          32,
	Secret:        252,
	FoundSecret:   251,
	Revealed:      99,
	Crosshair:     doomGrays,
	Mark:          doomWhite,
	Player:        doomWhite,
	Players:       [4]uint8{doomGreens, doomGrays, doomBrowns, doomReds},
	Invisible:     246,
	Item:          doomYellows,
	Thing:         doomGrays,
	Keys:          [numKeyColors]uint8{doomBlues, doomReds, doomYellows},
}

// DoomRuleset returns the Doom ruleset in one of the config color schemes
func DoomRuleset(scheme string) (*Ruleset, error) {
	var colors Colors
	switch scheme {
	case config.SchemeOriginal, "":
		colors = doomOriginal
	case config.SchemeBoom:
		colors = doomBoom
	case config.SchemeRemaster:
		colors = doomRemaster
	case config.SchemeJaguar:
		colors = doomJaguar
	default:
		return nil, fmt.Errorf("unknown color scheme %q", scheme)
	}

	rs := &Ruleset{
		Name:        config.GameDoom,
		Colors:      colors,
		Pulses:      doomPulses,
		PlayerArrow: DoomArrow,
		CheatArrow:  DoomCheatArrow,
		ThingShape:  ThinTriangleGuy,
		ItemShape:   TriangleGuy,
		GridUnit:    DefaultGridUnit,

		IsDecoration: isShortLived,
	}
	rs.Classifier = &SpecialClassifier{
		Colors:        &rs.Colors,
		SecretSpecial: doomSecretSpecial,
		Exits:         specialSet(11, 51, 52, 124, 197, 198),
		Teleports:     specialSet(39, 97, 125, 126),
		Locks: lockTable(map[KeyColor][]int16{
			KeyBlue:   {26, 32, 99, 133},
			KeyRed:    {28, 33, 134, 135},
			KeyYellow: {27, 34, 136, 137},
		}),
	}
	return rs, nil
}
