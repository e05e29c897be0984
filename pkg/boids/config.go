package boids

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config holds every tunable of the simulation. All the steering constants
// are plain fields rather than literals so a front end can adjust them at
// runtime through the same struct the engine reads.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	AgentCount int `json:"agentCount"`

	// Interaction Radii
	VisualRange float64 `json:"visualRange"` // Cohesion/alignment neighborhood
	MinDistance float64 `json:"minDistance"` // Personal space radius

	// Steering strengths
	SeparationFactor float64 `json:"separationFactor"`
	CohesionFactor   float64 `json:"cohesionFactor"`
	AlignmentFactor  float64 `json:"alignmentFactor"`

	// Speed & containment
	SpeedLimit    float64 `json:"speedLimit"` // Pixels per second
	EdgeBuffer    float64 `json:"edgeBuffer"` // Distance from an edge where turning starts
	TurnFactor    float64 `json:"turnFactor"` // Edge turning strength
	BoundsDamping float64 `json:"boundsDamping"`

	// Cursor repulsion
	CursorAvoidRadius float64 `json:"cursorAvoidRadius"`
	CursorAvoidFactor float64 `json:"cursorAvoidFactor"`

	// Spawn RNG seed; 0 picks a time-based seed.
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the reference tuning: a 16:9 720p world with the
// classic flocking constants.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:        1280,
		WorldHeight:       720,
		AgentCount:        100,
		VisualRange:       32.0,
		MinDistance:       16.0,
		SeparationFactor:  0.5,
		CohesionFactor:    0.05,
		AlignmentFactor:   0.1,
		SpeedLimit:        400.0,
		EdgeBuffer:        40.0,
		TurnFactor:        16.0,
		BoundsDamping:     0.8,
		CursorAvoidRadius: 20.0,
		CursorAvoidFactor: 1.0,
	}
}

// Bounds returns the world dimensions as the immutable value the steering
// engine reads each tick.
func (c *Config) Bounds() Bounds {
	return Bounds{Width: c.WorldWidth, Height: c.WorldHeight}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, on top of the defaults so omitted
	// fields keep their reference values.
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
