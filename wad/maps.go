package wad

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/vmath"
)

// Format is the on-disk map layout
type Format uint8

const (
	FormatDoom Format = iota
	FormatHexen
)

func (f Format) String() string {
	if f == FormatHexen {
		return "hexen"
	}
	return "doom"
}

// Record sizes
const (
	doomThingSize    = 10
	hexenThingSize   = 20
	doomLinedefSize  = 14
	hexenLinedefSize = 16
	sidedefSize      = 30
	vertexSize       = 4
	sectorSize       = 26
)

const noSidedef = 0xFFFF

// Map lumps that may follow a marker, in any order
var mapLumps = map[string]bool{
	"THINGS": true, "LINEDEFS": true, "SIDEDEFS": true, "VERTEXES": true,
	"SEGS": true, "SSECTORS": true, "NODES": true, "SECTORS": true,
	"REJECT": true, "BLOCKMAP": true, "BEHAVIOR": true, "SCRIPTS": true,
}

var mapNamePattern = regexp.MustCompile(`^(E[1-9]M[1-9]|MAP[0-9][0-9])$`)

type doomThing struct {
	X, Y  int16
	Angle int16
	Type  int16
	Flags int16
}

type hexenThing struct {
	TID    int16
	X, Y   int16
	Height int16
	Angle  int16
	Type   int16
	Flags  int16
	Action uint8
	Args   [5]byte
}

type doomLinedef struct {
	V1, V2  uint16
	Flags   uint16
	Special uint16
	Tag     uint16
	Front   uint16
	Back    uint16
}

type hexenLinedef struct {
	V1, V2  uint16
	Flags   uint16
	Special uint8
	Args    [5]byte
	Front   uint16
	Back    uint16
}

type sidedef struct {
	XOffset int16
	YOffset int16
	Upper   [8]byte
	Lower   [8]byte
	Middle  [8]byte
	Sector  uint16
}

type vertex struct {
	X, Y int16
}

type sector struct {
	Floor   int16
	Ceiling int16
	FloorT  [8]byte
	CeilT   [8]byte
	Light   int16
	Special int16
	Tag     int16
}

// Thing option bits
const (
	thingEasy   = 0x0001
	thingMedium = 0x0002
	thingHard   = 0x0004
	thingMulti  = 0x0010 // Doom and Heretic: not in single player

	hexenSingle = 0x0100
	hexenCoop   = 0x0200
)

// LoadOptions filters things the way a game session would spawn them
type LoadOptions struct {
	Game    Game
	Skill   int // 1..5
	Netgame bool
}

// MapNames lists map markers in directory order
func (w *WAD) MapNames() []string {
	var names []string
	seen := make(map[string]bool)
	for i, e := range w.Dir {
		name := e.LumpName()
		if !mapNamePattern.MatchString(name) || seen[name] {
			continue
		}
		if i+1 < len(w.Dir) && w.Dir[i+1].LumpName() == "THINGS" {
			names = append(names, name)
			seen[name] = true
		}
	}
	return names
}

// mapLumpIndices collects the lumps belonging to a map marker
func (w *WAD) mapLumpIndices(name string) (map[string]int, error) {
	marker := w.Find(name)
	if marker < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	idx := make(map[string]int)
	for i := marker + 1; i < len(w.Dir); i++ {
		ln := w.Dir[i].LumpName()
		if !mapLumps[ln] {
			break
		}
		idx[ln] = i
	}
	for _, req := range []string{"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SECTORS"} {
		if _, ok := idx[req]; !ok {
			return nil, fmt.Errorf("%w: %s lacks %s", ErrMapNotFound, name, req)
		}
	}
	return idx, nil
}

// LoadMap resolves a map into level form; Hexen layout is chosen when a BEHAVIOR lump is present
func (w *WAD) LoadMap(name string, opts LoadOptions) (*level.Level, Format, error) {
	name = strings.ToUpper(name)
	idx, err := w.mapLumpIndices(name)
	if err != nil {
		return nil, FormatDoom, err
	}
	format := FormatDoom
	if _, ok := idx["BEHAVIOR"]; ok {
		format = FormatHexen
	}
	if opts.Skill == 0 {
		opts.Skill = 3
	}

	read := func(lump string) ([]byte, error) { return w.ReadLump(idx[lump]) }
	lv := &level.Level{Name: name}

	raw, err := read("VERTEXES")
	if err != nil {
		return nil, format, err
	}
	verts, err := decode[vertex](raw, vertexSize, "VERTEXES")
	if err != nil {
		return nil, format, err
	}
	for _, v := range verts {
		lv.Vertices = append(lv.Vertices, level.Vertex{X: vmath.FromInt(int(v.X)), Y: vmath.FromInt(int(v.Y))})
	}

	if raw, err = read("SECTORS"); err != nil {
		return nil, format, err
	}
	secs, err := decode[sector](raw, sectorSize, "SECTORS")
	if err != nil {
		return nil, format, err
	}
	for _, s := range secs {
		lv.Sectors = append(lv.Sectors, level.Sector{
			FloorHeight:   vmath.FromInt(int(s.Floor)),
			CeilingHeight: vmath.FromInt(int(s.Ceiling)),
			Special:       s.Special,
			Tag:           s.Tag,
		})
	}

	if raw, err = read("SIDEDEFS"); err != nil {
		return nil, format, err
	}
	sides, err := decode[sidedef](raw, sidedefSize, "SIDEDEFS")
	if err != nil {
		return nil, format, err
	}
	sideSector := func(sd uint16) (level.SectorID, error) {
		if sd == noSidedef {
			return level.NoSector, nil
		}
		if int(sd) >= len(sides) {
			return level.NoSector, fmt.Errorf("%w: sidedef %d out of range", ErrLump, sd)
		}
		sec := int(sides[sd].Sector)
		if sec >= len(lv.Sectors) {
			return level.NoSector, fmt.Errorf("%w: sidedef %d sector %d out of range", ErrLump, sd, sec)
		}
		return level.SectorID(sec), nil
	}

	if raw, err = read("LINEDEFS"); err != nil {
		return nil, format, err
	}
	if err := loadLines(lv, raw, format, sideSector); err != nil {
		return nil, format, err
	}

	if raw, err = read("THINGS"); err != nil {
		return nil, format, err
	}
	if err := loadThings(lv, raw, format, opts); err != nil {
		return nil, format, err
	}

	lv.SetDefaultBlockmapOrigin()
	if bi, ok := idx["BLOCKMAP"]; ok {
		if raw, err := w.ReadLump(bi); err == nil && len(raw) >= 4 {
			ox := int16(uint16(raw[0]) | uint16(raw[1])<<8)
			oy := int16(uint16(raw[2]) | uint16(raw[3])<<8)
			lv.BlockmapOriginX = vmath.FromInt(int(ox))
			lv.BlockmapOriginY = vmath.FromInt(int(oy))
		}
	}
	return lv, format, nil
}

func loadLines(lv *level.Level, raw []byte, format Format, sideSector func(uint16) (level.SectorID, error)) error {
	add := func(i int, v1, v2, flags uint16, special int16, tag int16, args [5]byte, front, back uint16) error {
		if int(v1) >= len(lv.Vertices) || int(v2) >= len(lv.Vertices) {
			return fmt.Errorf("%w: linedef %d vertex out of range", ErrLump, i)
		}
		fs, err := sideSector(front)
		if err != nil {
			return err
		}
		if fs == level.NoSector {
			return fmt.Errorf("%w: linedef %d has no front side", ErrLump, i)
		}
		bs, err := sideSector(back)
		if err != nil {
			return err
		}
		lv.Lines = append(lv.Lines, level.Line{
			V1: int(v1), V2: int(v2),
			Flags:   flags & 0x01ff,
			Special: special,
			Tag:     tag,
			Args:    args,
			Front:   fs,
			Back:    bs,
		})
		return nil
	}

	if format == FormatHexen {
		defs, err := decode[hexenLinedef](raw, hexenLinedefSize, "LINEDEFS")
		if err != nil {
			return err
		}
		for i, d := range defs {
			if err := add(i, d.V1, d.V2, d.Flags, int16(d.Special), int16(d.Args[0]), d.Args, d.Front, d.Back); err != nil {
				return err
			}
		}
		return nil
	}

	defs, err := decode[doomLinedef](raw, doomLinedefSize, "LINEDEFS")
	if err != nil {
		return err
	}
	for i, d := range defs {
		if err := add(i, d.V1, d.V2, d.Flags, int16(d.Special), int16(d.Tag), [5]byte{}, d.Front, d.Back); err != nil {
			return err
		}
	}
	return nil
}

func skillBit(skill int) int16 {
	switch {
	case skill <= 2:
		return thingEasy
	case skill == 3:
		return thingMedium
	default:
		return thingHard
	}
}

func loadThings(lv *level.Level, raw []byte, format Format, opts LoadOptions) error {
	bit := skillBit(opts.Skill)
	spawn := func(x, y, angle, typ int16) {
		info := LookupThing(opts.Game, int(typ))
		t := level.Thing{
			X:      vmath.FromInt(int(x)),
			Y:      vmath.FromInt(int(y)),
			Angle:  vmath.AngleFromDegrees(int(angle)),
			Type:   int(typ),
			Radius: vmath.FromInt(info.Radius),
			Flags:  info.Flags,
			Health: info.Health,
			Target: level.NoThing,
			Player: -1,
			Sector: level.NoSector,
		}
		if typ >= 1 && typ <= 4 {
			t.Player = int(typ) - 1
		}
		lv.AddThing(t)
	}

	if format == FormatHexen {
		things, err := decode[hexenThing](raw, hexenThingSize, "THINGS")
		if err != nil {
			return err
		}
		for _, th := range things {
			isStart := th.Type >= 1 && th.Type <= 4
			if !isStart {
				if th.Flags&bit == 0 {
					continue
				}
				if opts.Netgame && th.Flags&hexenCoop == 0 || !opts.Netgame && th.Flags&hexenSingle == 0 {
					continue
				}
			}
			if isStart && !opts.Netgame && th.Type != 1 {
				continue
			}
			spawn(th.X, th.Y, th.Angle, th.Type)
		}
		return nil
	}

	things, err := decode[doomThing](raw, doomThingSize, "THINGS")
	if err != nil {
		return err
	}
	for _, th := range things {
		isStart := th.Type >= 1 && th.Type <= 4
		if isStart {
			if !opts.Netgame && th.Type != 1 {
				continue
			}
		} else {
			if th.Flags&bit == 0 {
				continue
			}
			if !opts.Netgame && th.Flags&thingMulti != 0 {
				continue
			}
		}
		spawn(th.X, th.Y, th.Angle, th.Type)
	}
	return nil
}

// SpawnState places players on their start things; the console player is slot 0
func SpawnState(lv *level.Level, netgame bool) (*level.State, error) {
	st := &level.State{Map: lv, Multiplayer: netgame}
	for i := range lv.Things {
		slot := lv.Things[i].Player
		if slot < 0 || slot >= level.MaxPlayers || st.Slots[slot].InGame {
			continue
		}
		st.Slots[slot] = level.Player{InGame: true, Body: level.ThingID(i)}
	}
	if !st.Slots[0].InGame {
		return nil, fmt.Errorf("%w: %s has no player 1 start", ErrLump, lv.Name)
	}
	return st, nil
}
