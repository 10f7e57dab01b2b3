package wad

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/automap/level"
)

// Game selects the thing table
type Game uint8

const (
	GameDoom Game = iota
	GameHeretic
	GameHexen
)

// ParseGame maps a config name to a Game
func ParseGame(name string) (Game, error) {
	switch strings.ToLower(name) {
	case "doom":
		return GameDoom, nil
	case "heretic":
		return GameHeretic, nil
	case "hexen":
		return GameHexen, nil
	}
	return GameDoom, fmt.Errorf("unknown game %q", name)
}

// ThingInfo is the subset of a mobj definition the map cares about
type ThingInfo struct {
	Radius int
	Health int
	Flags  uint32
}

const (
	monster = level.ThingSolid | level.ThingShootable | level.ThingCountKill
	item    = level.ThingCountItem
)

var defaultThing = ThingInfo{Radius: 20, Health: 1000}

var doomThings = map[int]ThingInfo{
	1: {16, 100, level.ThingSolid | level.ThingShootable},
	2: {16, 100, level.ThingSolid | level.ThingShootable},
	3: {16, 100, level.ThingSolid | level.ThingShootable},
	4: {16, 100, level.ThingSolid | level.ThingShootable},

	3004: {20, 20, monster},                      // zombieman
	9:    {20, 30, monster},                      // shotgun guy
	65:   {20, 70, monster},                      // chaingunner
	3001: {20, 60, monster},                      // imp
	3002: {30, 150, monster},                     // demon
	58:   {30, 150, monster | level.ThingShadow}, // spectre
	3006: {16, 100, monster},                     // lost soul
	3005: {31, 400, monster},                     // cacodemon
	69:   {24, 500, monster},                     // hell knight
	3003: {24, 1000, monster},                    // baron
	68:   {64, 500, monster},                     // arachnotron
	71:   {31, 400, monster},                     // pain elemental
	66:   {20, 300, monster},                     // revenant
	67:   {48, 600, monster},                     // mancubus
	64:   {20, 700, monster},                     // archvile
	7:    {128, 3000, monster},                   // spider mastermind
	16:   {40, 4000, monster},                    // cyberdemon
	84:   {20, 50, monster},                      // wolfenstein ss

	2013: {20, 1000, item}, // soulsphere
	2014: {20, 1000, item}, // health bonus
	2015: {20, 1000, item}, // armor bonus
	2022: {20, 1000, item}, // invulnerability
	2023: {20, 1000, item}, // berserk
	2024: {20, 1000, item}, // invisibility
	2025: {20, 1000, item}, // radiation suit
	2026: {20, 1000, item}, // computer map
	2045: {20, 1000, item}, // light amplification
	83:   {20, 1000, item}, // megasphere
}

var hereticThings = map[int]ThingInfo{
	1: {16, 100, level.ThingSolid | level.ThingShootable},
	2: {16, 100, level.ThingSolid | level.ThingShootable},
	3: {16, 100, level.ThingSolid | level.ThingShootable},
	4: {16, 100, level.ThingSolid | level.ThingShootable},

	66: {16, 40, monster},                      // gargoyle
	5:  {16, 80, monster},                      // fire gargoyle
	68: {22, 80, monster},                      // golem
	69: {22, 80, monster | level.ThingShadow},  // golem ghost
	45: {22, 100, monster},                     // nitrogolem
	64: {24, 200, monster},                     // undead warrior
	65: {24, 200, monster | level.ThingShadow}, // undead warrior ghost
	15: {16, 180, monster},                     // disciple
	90: {20, 150, monster},                     // sabreclaw
	92: {22, 280, monster},                     // ophidian
	70: {40, 700, monster},                     // iron lich
	9:  {28, 3000, monster},                    // maulotaur
	7:  {28, 2000, monster},                    // d'sparil

	30: {20, 1000, item}, // morph ovum
	32: {20, 1000, item}, // mystic urn
	33: {20, 1000, item}, // torch
	34: {20, 1000, item}, // time bomb
	35: {20, 1000, item}, // map scroll
	36: {20, 1000, item}, // chaos device
	75: {20, 1000, item}, // shadowsphere
	82: {20, 1000, item}, // quartz flask
	84: {20, 1000, item}, // ring of invulnerability
	86: {20, 1000, item}, // tome of power
}

var hexenThings = map[int]ThingInfo{
	1: {16, 100, level.ThingSolid | level.ThingShootable},
	2: {16, 100, level.ThingSolid | level.ThingShootable},
	3: {16, 100, level.ThingSolid | level.ThingShootable},
	4: {16, 100, level.ThingSolid | level.ThingShootable},

	10030: {25, 175, monster},  // ettin
	107:   {20, 200, monster},  // centaur
	115:   {20, 250, monster},  // slaughtaur
	114:   {22, 130, monster},  // dark bishop
	31:    {32, 90, monster},   // chaos serpent
	120:   {32, 90, monster},   // brown chaos serpent
	34:    {22, 150, monster},  // wendigo
	8080:  {20, 80, monster},   // afrit
	121:   {20, 120, monster},  // stalker
	254:   {20, 640, monster},  // death wyvern
	10080: {40, 5000, monster}, // heresiarch
	10200: {20, 150, monster},  // korax servant

	30:   {20, 1000, item}, // porkalator
	32:   {20, 1000, item}, // mystic urn
	33:   {20, 1000, item}, // torch
	36:   {20, 1000, item}, // chaos device
	82:   {20, 1000, item}, // quartz flask
	84:   {20, 1000, item}, // icon of the defender
	86:   {20, 1000, item}, // dark servant
	8041: {20, 1000, item}, // mystic ambit incant
}

// LookupThing returns the map-relevant definition for a thing type, falling back to an inert default
func LookupThing(g Game, typ int) ThingInfo {
	var table map[int]ThingInfo
	switch g {
	case GameHeretic:
		table = hereticThings
	case GameHexen:
		table = hexenThings
	default:
		table = doomThings
	}
	if info, ok := table[typ]; ok {
		return info
	}
	return defaultThing
}
