package input

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/automap/terminal"
)

// Rune aliases for characters awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"minus":     '-',
	"plus":      '+',
	"equals":    '=',
}

// keymapFile is the YAML layout of a keymap override file
type keymapFile struct {
	Keys  map[string]string `yaml:"keys"`
	Runes map[string]string `yaml:"runes"`
}

// LoadKeyConfigFile reads a YAML keymap file
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	return LoadKeyConfig(data)
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only sections present in the document are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if f.Keys != nil {
		kt.Keys = make(map[terminal.Key]IntentType, len(f.Keys))
		for name, action := range f.Keys {
			k, ok := terminal.KeyByName(name)
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			t, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", name, err)
			}
			kt.Keys[k] = t
		}
	}
	if f.Runes != nil {
		kt.Runes = make(map[rune]IntentType, len(f.Runes))
		for name, action := range f.Runes {
			r, err := resolveRune(name)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", name, err)
			}
			t, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", name, err)
			}
			kt.Runes[r] = t
		}
	}
	return kt, nil
}

// ParseKeymap builds an override table from a flat name to action map, as found in the main config
// A single character or rune alias binds a rune, anything else must be a key name
func ParseKeymap(m map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}
	for name, action := range m {
		t, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("keymap %q: %w", name, err)
		}
		if r, err := resolveRune(name); err == nil {
			if kt.Runes == nil {
				kt.Runes = make(map[rune]IntentType)
			}
			kt.Runes[r] = t
			continue
		}
		k, ok := terminal.KeyByName(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown key %q", name)
		}
		if kt.Keys == nil {
			kt.Keys = make(map[terminal.Key]IntentType)
		}
		kt.Keys[k] = t
	}
	return kt, nil
}

// resolveRune accepts a single character or a named alias
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	t, ok := ActionByName(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return t, nil
}

// MergeKeyTable returns base overridden by the non-nil maps of override
// Entries bound to "none" remove the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.Keys == nil {
		result.Keys = make(map[terminal.Key]IntentType)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]IntentType)
	}
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
