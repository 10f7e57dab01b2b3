package level

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/automap/vmath"
)

// ErrScene reports a structurally invalid scene document
var ErrScene = errors.New("invalid scene")

// Scene is the YAML form of a hand-authored level, in whole world units
type Scene struct {
	Name           string        `yaml:"name"`
	BlockmapOrigin *[2]int       `yaml:"blockmap_origin"`
	Vertices       [][2]int      `yaml:"vertices"`
	Sectors        []SceneSector `yaml:"sectors"`
	Lines          []SceneLine   `yaml:"lines"`
	Things         []SceneThing  `yaml:"things"`
	Players        []ScenePlayer `yaml:"players"`
	Console        int           `yaml:"console"`
	Netgame        bool          `yaml:"netgame"`
}

type SceneSector struct {
	Floor      int `yaml:"floor"`
	Ceiling    int `yaml:"ceiling"`
	Special    int `yaml:"special"`
	OldSpecial int `yaml:"old_special"`
	Tag        int `yaml:"tag"`
}

type SceneLine struct {
	V1      int      `yaml:"v1"`
	V2      int      `yaml:"v2"`
	Front   int      `yaml:"front"`
	Back    *int     `yaml:"back"`
	Flags   []string `yaml:"flags"`
	Special int      `yaml:"special"`
	Tag     int      `yaml:"tag"`
	Args    []int    `yaml:"args"`
}

type SceneThing struct {
	X      int      `yaml:"x"`
	Y      int      `yaml:"y"`
	Angle  int      `yaml:"angle"`
	Type   int      `yaml:"type"`
	Radius int      `yaml:"radius"`
	Flags  []string `yaml:"flags"`
	Health int      `yaml:"health"`
	Target *int     `yaml:"target"`
	Player *int     `yaml:"player"`
}

type ScenePlayer struct {
	Body   int      `yaml:"body"`
	Cheats int      `yaml:"cheats"`
	Powers []string `yaml:"powers"`
}

var lineFlagNames = map[string]uint16{
	"blocking":      LineBlocking,
	"blockmonsters": LineBlockMonsters,
	"twosided":      LineTwoSided,
	"secret":        LineSecret,
	"soundblock":    LineSoundBlock,
	"dontdraw":      LineDontDraw,
	"mapped":        LineMapped,
}

var thingFlagNames = map[string]uint32{
	"solid":      ThingSolid,
	"shootable":  ThingShootable,
	"shadow":     ThingShadow,
	"corpse":     ThingCorpse,
	"countkill":  ThingCountKill,
	"countitem":  ThingCountItem,
	"decoration": ThingDecoration,
}

var powerNames = map[string]PowerType{
	"invulnerability": PowerInvulnerability,
	"strength":        PowerStrength,
	"invisibility":    PowerInvisibility,
	"ironfeet":        PowerIronFeet,
	"allmap":          PowerAllMap,
	"infrared":        PowerInfrared,
}

// LoadScene reads and builds a YAML scene file
func LoadScene(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene into a level and player state
func ParseScene(data []byte) (*State, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return sc.Build()
}

// Build validates references and converts the scene into arena form
func (sc *Scene) Build() (*State, error) {
	lv := &Level{Name: sc.Name}

	for _, v := range sc.Vertices {
		lv.Vertices = append(lv.Vertices, Vertex{X: vmath.FromInt(v[0]), Y: vmath.FromInt(v[1])})
	}

	for _, s := range sc.Sectors {
		lv.Sectors = append(lv.Sectors, Sector{
			FloorHeight:   vmath.FromInt(s.Floor),
			CeilingHeight: vmath.FromInt(s.Ceiling),
			Special:       int16(s.Special),
			OldSpecial:    int16(s.OldSpecial),
			Tag:           int16(s.Tag),
		})
	}

	for i, l := range sc.Lines {
		if l.V1 < 0 || l.V1 >= len(lv.Vertices) || l.V2 < 0 || l.V2 >= len(lv.Vertices) {
			return nil, fmt.Errorf("%w: line %d vertex out of range", ErrScene, i)
		}
		if l.Front < 0 || l.Front >= len(lv.Sectors) {
			return nil, fmt.Errorf("%w: line %d front sector out of range", ErrScene, i)
		}
		line := Line{
			V1: l.V1, V2: l.V2,
			Special: int16(l.Special),
			Tag:     int16(l.Tag),
			Front:   SectorID(l.Front),
			Back:    NoSector,
		}
		if l.Back != nil && *l.Back >= 0 {
			if *l.Back >= len(lv.Sectors) {
				return nil, fmt.Errorf("%w: line %d back sector out of range", ErrScene, i)
			}
			line.Back = SectorID(*l.Back)
			line.Flags |= LineTwoSided
		}
		for _, name := range l.Flags {
			bit, ok := lineFlagNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("%w: line %d unknown flag %q", ErrScene, i, name)
			}
			line.Flags |= bit
		}
		for j := 0; j < len(l.Args) && j < len(line.Args); j++ {
			line.Args[j] = byte(l.Args[j])
		}
		lv.Lines = append(lv.Lines, line)
	}

	for i, t := range sc.Things {
		th := Thing{
			X:      vmath.FromInt(t.X),
			Y:      vmath.FromInt(t.Y),
			Angle:  vmath.AngleFromDegrees(t.Angle),
			Type:   t.Type,
			Radius: vmath.FromInt(t.Radius),
			Health: t.Health,
			Target: NoThing,
			Player: -1,
			Sector: NoSector,
		}
		if th.Radius == 0 {
			th.Radius = vmath.FromInt(20)
		}
		if t.Target != nil {
			th.Target = ThingID(*t.Target)
		}
		if t.Player != nil {
			th.Player = *t.Player
		}
		for _, name := range t.Flags {
			bit, ok := thingFlagNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("%w: thing %d unknown flag %q", ErrScene, i, name)
			}
			th.Flags |= bit
		}
		lv.AddThing(th)
	}

	if sc.BlockmapOrigin != nil {
		lv.BlockmapOriginX = vmath.FromInt(sc.BlockmapOrigin[0])
		lv.BlockmapOriginY = vmath.FromInt(sc.BlockmapOrigin[1])
	} else {
		lv.SetDefaultBlockmapOrigin()
	}

	st := &State{Map: lv, Console: sc.Console, Multiplayer: sc.Netgame}
	if len(sc.Players) > MaxPlayers {
		return nil, fmt.Errorf("%w: %d players exceeds %d slots", ErrScene, len(sc.Players), MaxPlayers)
	}
	for i, p := range sc.Players {
		if lv.Thing(ThingID(p.Body)) == nil {
			return nil, fmt.Errorf("%w: player %d body %d not a thing", ErrScene, i, p.Body)
		}
		slot := Player{InGame: true, Body: ThingID(p.Body), Cheats: CheatLevel(p.Cheats)}
		for _, name := range p.Powers {
			pw, ok := powerNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("%w: player %d unknown power %q", ErrScene, i, name)
			}
			slot.Powers[pw] = 1
		}
		lv.Things[p.Body].Player = i
		st.Slots[i] = slot
	}
	if st.Console < 0 || st.Console >= MaxPlayers || !st.Slots[st.Console].InGame {
		return nil, fmt.Errorf("%w: console player %d not in game", ErrScene, st.Console)
	}
	return st, nil
}
