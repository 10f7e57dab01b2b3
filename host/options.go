package host

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/automap/config"
)

// Options are the command line flags shared by every front end
type Options struct {
	ConfigPath string
	WAD        string
	Map        string
	Game       string
	Scheme     string
	Skill      int
	Netgame    bool
	Scene      string
	Uncapped   bool
	Smoothing  bool
	Debug      bool

	fs *pflag.FlagSet
}

// Register adds the shared flags to fs
func (o *Options) Register(fs *pflag.FlagSet) {
	o.fs = fs
	fs.StringVarP(&o.ConfigPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	fs.StringVarP(&o.WAD, "wad", "w", "", "WAD file to load the level from")
	fs.StringVarP(&o.Map, "map", "m", "", "Map lump name, e.g. E1M1 or MAP01 (first map when empty)")
	fs.StringVarP(&o.Game, "game", "g", "", "Game rules: doom, heretic, hexen")
	fs.StringVar(&o.Scheme, "scheme", "", "Doom color scheme: original, boom, remaster, jaguar")
	fs.IntVar(&o.Skill, "skill", 3, "Skill level used to filter things (1-5)")
	fs.BoolVar(&o.Netgame, "netgame", false, "Spawn multiplayer-only things and every player start")
	fs.StringVarP(&o.Scene, "scene", "s", "", "YAML scene to load when no WAD is given")
	fs.BoolVar(&o.Uncapped, "uncapped", true, "Interpolate between tics")
	fs.BoolVar(&o.Smoothing, "smoothing", false, "Antialiased lines")
	fs.BoolVar(&o.Debug, "debug", false, "Write logs/automap.log and show counters")
}

// Config loads the config file, if any, and applies flags the user set explicitly
func (o *Options) Config() (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return nil, err
		}
	}

	if o.Game != "" {
		cfg.Game = o.Game
	}
	if o.Scheme != "" {
		cfg.Scheme = o.Scheme
	}
	if o.changed("uncapped") {
		cfg.Uncapped = o.Uncapped
	}
	if o.changed("smoothing") {
		cfg.Smoothing = o.Smoothing
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// Source names the level to load, with the game taken from cfg
func (o *Options) Source(cfg *config.Config) Source {
	return Source{
		WAD:     o.WAD,
		Map:     o.Map,
		Game:    cfg.Game,
		Skill:   o.Skill,
		Netgame: o.Netgame,
		Scene:   o.Scene,
	}
}

func (o *Options) changed(name string) bool {
	return o.fs != nil && o.fs.Changed(name)
}
