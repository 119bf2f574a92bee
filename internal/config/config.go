/*
PURPOSE:
  Defines the configuration structure and loading logic for GR Runner.
  A configuration is a batch of scenarios: each names a GR model, its
  parameters, optional initial store fractions, and the climate series.

REQUIREMENTS:
  User-specified:
  - Allow configuration of output location, parallelism and log level.
  - Scenarios carry inline rainfall / evapotranspiration series.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Parameters are keyed by name (X1..X6) so a scenario reads like the model documentation.
  - Observed flow and a warm-up length are optional (scoring only).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3, internal/model (name validation)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config file falls back to defaults (no scenarios).
  - Validate() rejects unknown models and malformed scenarios before any run.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (e.g., one worker per scenario up to 4).

USAGE:
  cfg, err := config.Load("gr_runner.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/runner.go

MAINTENANCE:
  - Update when adding new scenario options.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/gr-runner/internal/model"
)

// ErrInvalidConfig indicates a configuration that cannot be run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the full configuration for GR Runner.
type Config struct {
	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"` // CSV file name; the JSONL summary sits next to it
	Workers    int    `yaml:"workers"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	// KeepFlow writes full flow series into the JSON summaries.
	KeepFlow bool `yaml:"keep_flow"`
	// Only restricts the run to the named scenarios when not empty.
	Only []string `yaml:"only"`
	// Exclude is a list of strings to filter scenario names (substring match)
	Exclude   []string   `yaml:"exclude"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one independent simulation.
type Scenario struct {
	Name       string             `yaml:"name"`
	Model      string             `yaml:"model"`
	Parameters map[string]float64 `yaml:"parameters"`
	// States holds store levels as fractions of their scaling parameter,
	// keyed by store name (production_store, routing_store, exponential_store).
	States             map[string]float64 `yaml:"states"`
	Warmup             int                `yaml:"warmup"`
	Rainfall           []float64          `yaml:"rainfall"`
	Evapotranspiration []float64          `yaml:"evapotranspiration"`
	Observed           []float64          `yaml:"observed"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:  ".",
		OutputFile: "flows.csv",
		Workers:    4,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"gr_runner.yaml", "runner.yaml", "runner.conf"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration before a run.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("%w: scenario %d has no name", ErrInvalidConfig, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true

		info, err := model.Lookup(s.Model)
		if err != nil {
			return fmt.Errorf("%w: scenario %q: %w", ErrInvalidConfig, s.Name, err)
		}
		for _, p := range info.ParameterNames {
			if _, ok := s.Parameters[p]; !ok {
				return fmt.Errorf("%w: scenario %q: missing parameter %s for %s", ErrInvalidConfig, s.Name, p, info.Name)
			}
		}
		if s.Observed != nil && len(s.Observed) != len(s.Rainfall) {
			return fmt.Errorf("%w: scenario %q: observed has %d values, rainfall %d", ErrInvalidConfig, s.Name, len(s.Observed), len(s.Rainfall))
		}
	}
	return nil
}

// Filter drops scenarios whose name contains one of the Exclude substrings
// and, when Only is not empty, keeps only the listed scenarios.
func (c *Config) Filter() []Scenario {
	keep := make(map[string]bool, len(c.Only))
	for _, n := range c.Only {
		keep[n] = true
	}

	var out []Scenario
	for _, s := range c.Scenarios {
		if len(keep) > 0 && !keep[s.Name] {
			continue
		}
		if excluded(s.Name, c.Exclude) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func excluded(name string, filters []string) bool {
	for _, ex := range filters {
		if strings.Contains(strings.ToLower(name), strings.ToLower(ex)) {
			return true
		}
	}
	return false
}
