package plan

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"droneops-mission/internal/config"
	"droneops-mission/internal/mission"
)

//go:embed plan.cue
var planSchema string

// Step type names used in plan files.
const (
	TypeWaypoint    = "waypoint"
	TypeLand        = "land"
	TypeTakeoff     = "takeoff"
	TypeChangeSpeed = "change_speed"
)

// Plan is an ordered list of mission steps loaded from YAML.
type Plan struct {
	ID          string    `yaml:"id,omitempty" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []StepDef `yaml:"steps" json:"steps"`
}

// StepDef is the YAML form of a mission step; Type selects which fields apply.
type StepDef struct {
	Type        string  `yaml:"type" json:"type"`
	Lat         float32 `yaml:"lat,omitempty" json:"lat,omitempty"`
	Lon         float32 `yaml:"lon,omitempty" json:"lon,omitempty"`
	Alt         float32 `yaml:"alt,omitempty" json:"alt,omitempty"`
	Yaw         float32 `yaml:"yaw,omitempty" json:"yaw,omitempty"`
	Pitch       float32 `yaml:"pitch,omitempty" json:"pitch,omitempty"`
	Radius      float32 `yaml:"radius,omitempty" json:"radius,omitempty"`
	HoldTime    float32 `yaml:"hold_time,omitempty" json:"hold_time,omitempty"`
	Orbit       float32 `yaml:"orbit,omitempty" json:"orbit,omitempty"`
	GroundSpeed bool    `yaml:"ground_speed,omitempty" json:"ground_speed,omitempty"`
	Speed       float32 `yaml:"speed,omitempty" json:"speed,omitempty"`
	Throttle    float32 `yaml:"throttle,omitempty" json:"throttle,omitempty"`
}

// Load reads a YAML plan definition from disk.
func Load(path string) (*Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Parse(path, b)
}

// Parse validates plan YAML against the plan schema and decodes it. Plans
// without an id are assigned a random one.
func Parse(name string, data []byte) (*Plan, error) {
	if err := config.ValidateWithCue(name, data, planSchema, "#Plan"); err != nil {
		return nil, fmt.Errorf("validate plan: %w", err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return &p, nil
}

// Step converts the definition into its typed mission step.
func (s StepDef) Step() (mission.Step, error) {
	switch s.Type {
	case TypeWaypoint:
		return mission.WaypointStep{
			Lat: s.Lat, Lon: s.Lon, Alt: s.Alt, Yaw: s.Yaw,
			Radius: s.Radius, HoldTime: s.HoldTime, Orbit: s.Orbit,
		}, nil
	case TypeLand:
		return mission.LandStep{Lat: s.Lat, Lon: s.Lon, Alt: s.Alt, Yaw: s.Yaw}, nil
	case TypeTakeoff:
		return mission.TakeoffStep{Lat: s.Lat, Lon: s.Lon, Alt: s.Alt, Yaw: s.Yaw, Pitch: s.Pitch}, nil
	case TypeChangeSpeed:
		return mission.SpeedStep{GroundSpeed: s.GroundSpeed, Speed: s.Speed, Throttle: s.Throttle}, nil
	}
	return nil, fmt.Errorf("%w: unknown step type %q", mission.ErrBadParameter, s.Type)
}

// MissionSteps converts every step definition of the plan.
func (p *Plan) MissionSteps() ([]mission.Step, error) {
	steps := make([]mission.Step, 0, len(p.Steps))
	for i, s := range p.Steps {
		st, err := s.Step()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}
