package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/automap/config"
)

func parseOptions(t *testing.T, args ...string) *Options {
	t.Helper()
	var o Options
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return &o
}

func TestOptionsDefaults(t *testing.T) {
	o := parseOptions(t)
	cfg, err := o.Config()
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	def := config.Default()
	if cfg.Game != def.Game || cfg.Uncapped != def.Uncapped || cfg.Smoothing != def.Smoothing {
		t.Errorf("Expected defaults untouched, got %+v", cfg)
	}
	if src := o.Source(cfg); src.Skill != 3 || src.WAD != "" || src.Game != config.GameDoom {
		t.Errorf("Expected default source, got %+v", src)
	}
}

func TestOptionsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automap.yaml")
	if err := os.WriteFile(path, []byte("game: heretic\nuncapped: false\nsmoothing: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	tests := []struct {
		name      string
		args      []string
		game      string
		uncapped  bool
		smoothing bool
	}{
		{"file only", []string{"-c", path}, config.GameHeretic, false, true},
		{"game flag", []string{"-c", path, "--game", "hexen"}, config.GameHexen, false, true},
		{"explicit bools", []string{"-c", path, "--uncapped", "--smoothing=false"}, config.GameHeretic, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseOptions(t, tt.args...).Config()
			if err != nil {
				t.Fatalf("Config failed: %v", err)
			}
			if cfg.Game != tt.game || cfg.Uncapped != tt.uncapped || cfg.Smoothing != tt.smoothing {
				t.Errorf("Expected %s uncapped=%v smoothing=%v, got %s %v %v",
					tt.game, tt.uncapped, tt.smoothing, cfg.Game, cfg.Uncapped, cfg.Smoothing)
			}
		})
	}
}

func TestOptionsRejectBadValues(t *testing.T) {
	if _, err := parseOptions(t, "--game", "quake").Config(); err == nil {
		t.Errorf("Expected error for unknown game")
	}
	if _, err := parseOptions(t, "-c", filepath.Join(t.TempDir(), "missing.yaml")).Config(); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}
