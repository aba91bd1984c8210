// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"go-sparkles/internal/config"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresets []byte

// Library holds preset definitions keyed by ID.
type Library map[string]PresetDefinition

// Builtin returns a library with the presets shipped in the binary.
func Builtin() (Library, error) {
	lib := Library{}
	if err := lib.Load(builtinPresets); err != nil {
		return nil, fmt.Errorf("builtin presets: %w", err)
	}
	return lib, nil
}

// Load parses a YAML (or JSON) list of presets. Presets with an ID already
// in the library replace the old definition.
func (l Library) Load(data []byte) error {
	var defs []PresetDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("failed to unmarshal preset definitions: %w", err)
	}
	for i, def := range defs {
		if def.ID == "" {
			return fmt.Errorf("preset #%d has no id", i)
		}
		l[def.ID] = def
	}
	return nil
}

// LoadFile reads presets from a file.
func (l Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset definitions file: %w", err)
	}
	return l.Load(data)
}

// IDs returns the preset IDs in alphabetical order.
func (l Library) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Config resolves a preset on top of config.Default(). The result is not
// validated; callers layer files and environment first.
func (l Library) Config(id string) (*config.Config, error) {
	def, ok := l[id]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", id, l.IDs())
	}
	cfg := config.Default()
	if def.Config.Kind == 0 {
		return cfg, nil
	}
	if err := def.Config.Decode(cfg); err != nil {
		return nil, fmt.Errorf("preset %q: %w", id, err)
	}
	return cfg, nil
}
