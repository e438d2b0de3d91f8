package trip

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed plan.cue
var planSchema string

// ErrUnsupportedPlan is returned by LoadPlan for unknown file extensions.
var ErrUnsupportedPlan = errors.New("unsupported plan format")

// SensorPlan places one sensor.
type SensorPlan struct {
	ID       string `yaml:"id" json:"id"`
	Location string `yaml:"location" json:"location"`
}

// PlannedCatch is a catch the expedition run will log.
type PlannedCatch struct {
	Species string  `yaml:"species" json:"species"`
	Weight  float64 `yaml:"weight" json:"weight"`
}

// Plan describes an expedition before it starts.
type Plan struct {
	Location     string         `yaml:"location" json:"location"`
	Organizer    string         `yaml:"organizer" json:"organizer"`
	Participants []string       `yaml:"participants,omitempty" json:"participants,omitempty"`
	DepthMap     string         `yaml:"depth_map,omitempty" json:"depth_map,omitempty"`
	Spots        []string       `yaml:"spots,omitempty" json:"spots,omitempty"`
	Ecologist    string         `yaml:"ecologist,omitempty" json:"ecologist,omitempty"`
	Sensors      []SensorPlan   `yaml:"sensors,omitempty" json:"sensors,omitempty"`
	Catches      []PlannedCatch `yaml:"catches,omitempty" json:"catches,omitempty"`
}

// DefaultPlan is the built-in demo expedition.
func DefaultPlan() Plan {
	return Plan{
		Location:     "Lake Pobedy",
		Organizer:    "Petro",
		Participants: []string{"Petro"},
		DepthMap:     "Map 2024",
		Spots:        []string{"Near the shore", "In the centre", "By the island"},
		Ecologist:    "Maria Kovalenko",
		Sensors: []SensorPlan{
			{ID: "SENSOR_01", Location: "Lake Pobedy"},
			{ID: "SENSOR_02", Location: "Hrabovets River"},
		},
		Catches: []PlannedCatch{
			{Species: "Perch", Weight: 0.8},
			{Species: "Pike", Weight: 2.5},
			{Species: "Crucian carp", Weight: 0.6},
			{Species: "Catfish", Weight: 3.2},
		},
	}
}

// Validate checks the fields every plan needs.
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Location) == "" {
		return errors.New("location is required")
	}
	if strings.TrimSpace(p.Organizer) == "" {
		return errors.New("organizer is required")
	}
	for i, c := range p.Catches {
		if strings.TrimSpace(c.Species) == "" {
			return fmt.Errorf("catches[%d]: species is required", i)
		}
	}
	for i, s := range p.Sensors {
		if s.ID == "" {
			return fmt.Errorf("sensors[%d]: id is required", i)
		}
	}
	return nil
}

// LoadPlan reads a plan from a .yaml, .yml or .cue file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan *Plan
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		plan, err = ParseYAML(data)
	case ".cue":
		plan, err = ParseCUE(data, path)
	default:
		return nil, fmt.Errorf("%w: %q (want .yaml, .yml or .cue)", ErrUnsupportedPlan, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// ParseYAML decodes a YAML plan. Unknown fields are rejected.
func ParseYAML(data []byte) (*Plan, error) {
	var plan Plan
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &plan, nil
}

// ParseCUE evaluates a CUE plan against the #Plan schema and decodes it.
func ParseCUE(data []byte, filename string) (*Plan, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(planSchema, cue.Filename("plan.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling plan schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	value = schema.LookupPath(cue.ParsePath("#Plan")).Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	var plan Plan
	if err := value.Decode(&plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &plan, nil
}
