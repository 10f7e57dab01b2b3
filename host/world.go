package host

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/wad"
)

//go:embed demo.yaml
var demoScene []byte

// Source names where a front end gets its level from
// WAD wins over Scene; with neither the built-in demo is used
type Source struct {
	WAD     string
	Map     string // empty picks the first map in the WAD
	Game    string
	Skill   int
	Netgame bool
	Scene   string
}

// LoadWorld builds the level state and palette for a source
// Scenes and the demo use the stock palette; WADs without PLAYPAL fall back to it too
func LoadWorld(src Source) (*level.State, *render.Palette, error) {
	switch {
	case src.WAD != "":
		return loadWAD(src)
	case src.Scene != "":
		st, err := level.LoadScene(src.Scene)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("host: scene %s loaded, %d lines", src.Scene, len(st.Map.Lines))
		return st, render.DefaultPalette(), nil
	}
	st, err := level.ParseScene(demoScene)
	if err != nil {
		return nil, nil, fmt.Errorf("demo scene: %w", err)
	}
	return st, render.DefaultPalette(), nil
}

func loadWAD(src Source) (*level.State, *render.Palette, error) {
	w, err := wad.Open(src.WAD)
	if err != nil {
		return nil, nil, err
	}
	game, err := wad.ParseGame(src.Game)
	if err != nil {
		return nil, nil, err
	}

	name := src.Map
	if name == "" {
		names := w.MapNames()
		if len(names) == 0 {
			return nil, nil, fmt.Errorf("%s: %w", src.WAD, wad.ErrMapNotFound)
		}
		name = names[0]
	}

	skill := src.Skill
	if skill == 0 {
		skill = 3
	}
	lv, format, err := w.LoadMap(name, wad.LoadOptions{Game: game, Skill: skill, Netgame: src.Netgame})
	if err != nil {
		return nil, nil, err
	}
	st, err := wad.SpawnState(lv, src.Netgame)
	if err != nil {
		return nil, nil, err
	}

	pal, err := w.Palette()
	if errors.Is(err, wad.ErrLump) {
		log.Printf("host: %s has no usable PLAYPAL, using the stock palette: %v", src.WAD, err)
		pal = render.DefaultPalette()
	} else if err != nil {
		return nil, nil, err
	}

	log.Printf("host: %s %s (%s) loaded, %d lines, %d things",
		src.WAD, name, format, len(lv.Lines), len(lv.Things))
	return st, pal, nil
}
