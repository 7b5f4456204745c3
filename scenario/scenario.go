// Package scenario loads planner runs described in YAML: the believed map,
// an optional ground-truth map for the sensor, and run limits.
//
// Example:
//
//	name: corridor
//	max_steps: 5000
//	log_level: debug
//	grid: |
//	  SOUOG
//	  OOOOO
//	truth: |
//	  SOBOG
//	  OOOOO
//
// Unknown keys are rejected.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
)

// Sentinel errors returned by Parse, Validate and Build.
var (
	ErrNoGrid        = errors.New("scenario: grid is required")
	ErrBadMaxSteps   = errors.New("scenario: max_steps must be non-negative")
	ErrBadLogLevel   = errors.New("scenario: unknown log_level")
	ErrTruthMismatch = errors.New("scenario: truth grid does not match grid dimensions")
)

// Scenario is one planner run.
type Scenario struct {
	Name     string `yaml:"name"`
	Grid     string `yaml:"grid"`
	Truth    string `yaml:"truth,omitempty"`
	MaxSteps int    `yaml:"max_steps,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML strictly and validates the result.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks field ranges without parsing the grids.
func (s *Scenario) Validate() error {
	if s.Grid == "" {
		return ErrNoGrid
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxSteps, s.MaxSteps)
	}
	if _, err := s.Level(); err != nil {
		return err
	}

	return nil
}

// DefaultLevel applies when no log level is configured.
const DefaultLevel = slog.LevelWarn

// Level maps log_level to a slog level; empty means DefaultLevel.
func (s *Scenario) Level() (slog.Level, error) {
	return ParseLevel(s.LogLevel)
}

// ParseLevel maps debug, info, warn or error (any case) to a slog level.
// The empty string yields DefaultLevel.
func ParseLevel(text string) (slog.Level, error) {
	if text == "" {
		return DefaultLevel, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, text)
	}

	return lvl, nil
}

// Build parses the grid and, if present, the truth map. The returned sensor
// is nil when no truth map is given, which leaves the planner's default in
// place.
func (s *Scenario) Build() (*gridmap.Grid, dstar.Sensor, error) {
	g, err := gridmap.ParseString(s.Grid)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q: grid: %w", s.Name, err)
	}
	if s.Truth == "" {
		return g, nil, nil
	}
	truth, err := gridmap.ParseString(s.Truth)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q: truth: %w", s.Name, err)
	}
	if truth.Rows() != g.Rows() || truth.Cols() != g.Cols() {
		return nil, nil, fmt.Errorf("%w: %d×%d vs %d×%d",
			ErrTruthMismatch, truth.Rows(), truth.Cols(), g.Rows(), g.Cols())
	}

	return g, dstar.GroundTruth{Grid: truth}, nil
}

// Options returns the planner options the scenario implies.
func (s *Scenario) Options(sensor dstar.Sensor) []dstar.Option {
	opts := []dstar.Option{dstar.WithMaxSteps(s.MaxSteps)}
	if sensor != nil {
		opts = append(opts, dstar.WithSensor(sensor))
	}

	return opts
}
