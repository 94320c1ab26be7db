package project

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preset is a YAML answers file for non-interactive runs:
//
//	name: demo
//	template: react
//	features:
//	  tests: true
type Preset struct {
	Name     string          `yaml:"name"`
	Template string          `yaml:"template"`
	Features map[string]bool `yaml:"features"`
}

// LoadPreset reads and parses a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", path, err)
	}

	return &p, nil
}
