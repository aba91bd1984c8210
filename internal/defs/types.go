// internal/defs/types.go
package defs

import "gopkg.in/yaml.v3"

// PresetDefinition is a named partial configuration.
type PresetDefinition struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Config      yaml.Node `yaml:"config"`
}

// DefaultPreset is used when no preset is requested.
const DefaultPreset = "sparkle"
