// YAML vehicle defaults loader with CUE validation integration
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"droneops-mission/internal/mission"
)

//go:embed defaults.cue
var defaultsSchema string

// VehicleConfig addresses the receiving vehicle and sets the shared item flags.
type VehicleConfig struct {
	TargetSystem    uint8  `yaml:"target_system"`
	TargetComponent uint8  `yaml:"target_component"`
	Frame           string `yaml:"frame"`
	Autocontinue    *bool  `yaml:"autocontinue"`
}

// Default returns the protocol-wide vehicle configuration.
func Default() *VehicleConfig {
	auto := true
	return &VehicleConfig{
		TargetSystem:    mission.DefaultTargetSystem,
		TargetComponent: mission.DefaultTargetComponent,
		Frame:           mission.DefaultFrame.String(),
		Autocontinue:    &auto,
	}
}

// Load reads a YAML vehicle config and validates it against the embedded CUE
// schema. An empty path yields Default(). Omitted keys keep their defaults.
func Load(path string) (*VehicleConfig, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vehicle config: %w", err)
	}
	return Parse(path, data)
}

// Parse validates and decodes YAML vehicle config bytes. name is used in
// validation messages.
func Parse(name string, data []byte) (*VehicleConfig, error) {
	if err := ValidateWithCue(name, data, defaultsSchema, "#Vehicle"); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal YAML config: %w", err)
	}
	return cfg, nil
}

// ToDefaults converts the config into builder defaults.
func (c *VehicleConfig) ToDefaults() (mission.Defaults, error) {
	frame, err := mission.ParseFrame(c.Frame)
	if err != nil {
		return mission.Defaults{}, err
	}
	d := mission.Defaults{
		TargetSystem:    c.TargetSystem,
		TargetComponent: c.TargetComponent,
		Frame:           frame,
		Autocontinue:    mission.DefaultAutocontinue,
	}
	if c.Autocontinue != nil && !*c.Autocontinue {
		d.Autocontinue = 0
	}
	return d, nil
}
