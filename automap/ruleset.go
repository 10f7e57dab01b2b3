package automap

import (
	"fmt"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/level"
)

// Colors are the palette indices a ruleset draws with
type Colors struct {
	Background    uint8
	Grid          uint8
	Wall          uint8 // one-sided
	FloorChange   uint8
	CeilingChange uint8
	TwoSided      uint8 // cheat-only, no height change
	Teleport      uint8
	Exit          uint8
	Secret        uint8 // unfound secret sector
	FoundSecret   uint8
	Revealed      uint8 // unseen line shown by the computer map
	Crosshair     uint8
	Mark          uint8

	Player    uint8 // single player arrow
	Players   [level.MaxPlayers]uint8
	Invisible uint8 // arrow of a player with the invisibility power

	Item  uint8 // countable pickups
	Thing uint8 // everything else, and dead monsters

	// Keys are the locked-door colors indexed by KeyColor
	Keys [numKeyColors]uint8
}

// KeyColor names the three lock colors
type KeyColor int

const (
	KeyBlue KeyColor = iota
	KeyRed
	KeyYellow
	numKeyColors
)

// KeyGreen shares the red slot in games whose third key is green
const KeyGreen = KeyRed

// PulseBands are the inclusive palette ranges the animated colors sweep
type PulseBands struct {
	Active    [2]uint8
	Inactive  [2]uint8
	Spectator [2]uint8
}

// Ramped lists the semantic colors that get antialiasing ramps
func (c *Colors) Ramped() []uint8 {
	return []uint8{
		c.Wall, c.FloorChange, c.CeilingChange, c.TwoSided, c.Teleport, c.Exit,
		c.Secret, c.FoundSecret, c.Revealed, c.Grid,
		c.Keys[KeyBlue], c.Keys[KeyRed], c.Keys[KeyYellow],
	}
}

// ClassifyView is the viewer state a line classification depends on
type ClassifyView struct {
	Cheat  level.CheatLevel
	AllMap bool
	// RevealSecrets: 1 shows found secrets, 2 also shows unfound ones
	RevealSecrets int
}

// Classification is the verdict for one line
// Deferred lines are drawn after everything else so they end up on top
type Classification struct {
	Draw     bool
	Color    uint8
	Deferred bool
}

// LineClassifier picks whether and how a level line is drawn
type LineClassifier interface {
	Classify(lv *level.Level, l *level.Line, view ClassifyView) Classification
}

// Ruleset is everything that differs between the supported games
type Ruleset struct {
	Name       string
	Classifier LineClassifier
	Colors     Colors
	Pulses     PulseBands

	PlayerArrow []MapLine
	// CheatArrow replaces PlayerArrow at the deepest cheat level, nil keeps PlayerArrow
	CheatArrow []MapLine
	ThingShape []MapLine
	// ItemShape marks countable pickups, nil uses ThingShape
	ItemShape []MapLine
	GridUnit  int64

	// EdgeFade darkens antialiased lines near the window border
	EdgeFade bool
	// IsDecoration reports things drawn at half their radius
	IsDecoration func(t *level.Thing) bool
}

// RulesetFor selects a game ruleset by its config name
func RulesetFor(game, scheme string) (*Ruleset, error) {
	switch game {
	case config.GameDoom:
		return DoomRuleset(scheme)
	case config.GameHeretic:
		return HereticRuleset(), nil
	case config.GameHexen:
		return HexenRuleset(), nil
	}
	return nil, fmt.Errorf("unknown game %q", game)
}

// SpecialClassifier is the line classifier shared by all games, driven by special tables
type SpecialClassifier struct {
	Colors        *Colors
	SecretSpecial int16
	Exits         map[int16]bool
	Teleports     map[int16]bool
	Locks         map[int16]KeyColor
}

// Classify implements LineClassifier
// Precedence: exit, unfound secret, found secret, one-sided wall, then the two-sided chain
func (c *SpecialClassifier) Classify(lv *level.Level, l *level.Line, view ClassifyView) Classification {
	cheating := view.Cheat > level.CheatNone
	if l.Flags&level.LineDontDraw != 0 && !cheating {
		return Classification{}
	}

	front := lv.Sector(l.Front)
	back := lv.Sector(l.Back)
	if front == nil {
		return Classification{}
	}

	if !cheating && l.Flags&level.LineMapped == 0 {
		if !view.AllMap {
			return Classification{}
		}
		if back == nil || front.FloorHeight != back.FloorHeight || front.CeilingHeight != back.CeilingHeight {
			return Classification{Draw: true, Color: c.Colors.Revealed}
		}
		return Classification{}
	}

	deferred := func(color uint8) Classification {
		return Classification{Draw: true, Color: color, Deferred: true}
	}
	solid := func(color uint8) Classification {
		return Classification{Draw: true, Color: color}
	}

	switch {
	case c.Exits[l.Special]:
		return deferred(c.Colors.Exit)
	case view.RevealSecrets >= 2 && c.secret(front, back, false):
		return deferred(c.Colors.Secret)
	case view.RevealSecrets >= 1 && c.secret(front, back, true):
		return deferred(c.Colors.FoundSecret)
	case back == nil:
		return deferred(c.Colors.Wall)
	}

	if l.Flags&level.LineSecret != 0 {
		return solid(c.Colors.Wall)
	}
	if key, ok := c.Locks[l.Special]; ok {
		return solid(c.Colors.Keys[key])
	}
	if c.Teleports[l.Special] {
		return solid(c.Colors.Teleport)
	}
	if back.FloorHeight != front.FloorHeight {
		return solid(c.Colors.FloorChange)
	}
	if back.CeilingHeight != front.CeilingHeight {
		return solid(c.Colors.CeilingChange)
	}
	if cheating {
		return solid(c.Colors.TwoSided)
	}
	return Classification{}
}

// secret tests either side for the secret special, or for the remembered one once found
func (c *SpecialClassifier) secret(front, back *level.Sector, found bool) bool {
	match := func(s *level.Sector) bool {
		if s == nil {
			return false
		}
		if found {
			return s.OldSpecial == c.SecretSpecial && s.Special != c.SecretSpecial
		}
		return s.Special == c.SecretSpecial
	}
	return match(front) || match(back)
}

func specialSet(specials ...int16) map[int16]bool {
	m := make(map[int16]bool, len(specials))
	for _, s := range specials {
		m[s] = true
	}
	return m
}

func lockTable(keys map[KeyColor][]int16) map[int16]KeyColor {
	m := make(map[int16]KeyColor)
	for k, specials := range keys {
		for _, s := range specials {
			m[s] = k
		}
	}
	return m
}

func isShortLived(t *level.Thing) bool {
	return t.Flags&level.ThingDecoration != 0
}
