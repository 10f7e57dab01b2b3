// Package config holds the automap options and their YAML file form
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Supported games
const (
	GameDoom    = "doom"
	GameHeretic = "heretic"
	GameHexen   = "hexen"
)

// Doom color schemes
const (
	SchemeOriginal = "original"
	SchemeBoom     = "boom"
	SchemeRemaster = "remaster"
	SchemeJaguar   = "jaguar"
)

// EdgeFade modes
const (
	EdgeFadeAuto = "auto" // on for rulesets that define it
	EdgeFadeOn   = "on"
	EdgeFadeOff  = "off"
)

// Config is read-only for the automap once a session starts
type Config struct {
	Game   string `yaml:"game"`
	Scheme string `yaml:"scheme"`

	// Rendering
	Smoothing    bool   `yaml:"smoothing"`
	Thickness    int    `yaml:"thickness"` // 0 is auto, 1..6 fixed
	EdgeFade     string `yaml:"edge_fade"`
	SquareAspect bool   `yaml:"square_aspect"`
	FlipLevels   bool   `yaml:"flip_levels"`
	Uncapped     bool   `yaml:"uncapped"`

	// Session defaults
	Grid       bool    `yaml:"grid"`
	Rotate     bool    `yaml:"rotate"`
	Overlay    bool    `yaml:"overlay"`
	OverlayDim float64 `yaml:"overlay_dim"` // 0 leaves the view untouched, otherwise brightness factor
	Follow     bool    `yaml:"follow"`

	RevealSecrets int `yaml:"reveal_secrets"` // 0 none, 1 found, 2 all

	StatusBarHeight int `yaml:"status_bar_height"`

	// Motion, pan in pixels per tic and zoom as per-tic multipliers
	PanSpeed  int     `yaml:"pan_speed"`
	ZoomSlow  float64 `yaml:"zoom_slow"`
	ZoomFast  float64 `yaml:"zoom_fast"`
	ZoomWheel float64 `yaml:"zoom_wheel"`

	// Keymap overrides, key name or single character to action name
	Keymap map[string]string `yaml:"keymap"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Game:            GameDoom,
		Scheme:          SchemeOriginal,
		Smoothing:       false,
		Thickness:       0,
		EdgeFade:        EdgeFadeAuto,
		Uncapped:        true,
		Follow:          true,
		RevealSecrets:   1,
		StatusBarHeight: 0,
		PanSpeed:        4,
		ZoomSlow:        1.02,
		ZoomFast:        1.04,
		ZoomWheel:       1.08,
	}
}

// Load reads a YAML file over the defaults; fields absent from the file keep their default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	switch c.Game {
	case GameDoom, GameHeretic, GameHexen:
	default:
		return fmt.Errorf("%w: unknown game %q", ErrInvalid, c.Game)
	}
	switch c.Scheme {
	case SchemeOriginal, SchemeBoom, SchemeRemaster, SchemeJaguar:
	default:
		return fmt.Errorf("%w: unknown color scheme %q", ErrInvalid, c.Scheme)
	}
	switch c.EdgeFade {
	case EdgeFadeAuto, EdgeFadeOn, EdgeFadeOff:
	default:
		return fmt.Errorf("%w: edge_fade must be auto, on or off, got %q", ErrInvalid, c.EdgeFade)
	}
	if c.Thickness < 0 || c.Thickness > 6 {
		return fmt.Errorf("%w: thickness %d outside 0..6", ErrInvalid, c.Thickness)
	}
	if c.RevealSecrets < 0 || c.RevealSecrets > 2 {
		return fmt.Errorf("%w: reveal_secrets %d outside 0..2", ErrInvalid, c.RevealSecrets)
	}
	if c.OverlayDim < 0 || c.OverlayDim > 1 {
		return fmt.Errorf("%w: overlay_dim %.2f outside 0..1", ErrInvalid, c.OverlayDim)
	}
	if c.StatusBarHeight < 0 {
		return fmt.Errorf("%w: negative status_bar_height", ErrInvalid)
	}
	if c.PanSpeed < 1 {
		return fmt.Errorf("%w: pan_speed must be positive", ErrInvalid)
	}
	for name, z := range map[string]float64{"zoom_slow": c.ZoomSlow, "zoom_fast": c.ZoomFast, "zoom_wheel": c.ZoomWheel} {
		if z <= 1 || z > 2 {
			return fmt.Errorf("%w: %s %.3f outside (1, 2]", ErrInvalid, name, z)
		}
	}
	return nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
