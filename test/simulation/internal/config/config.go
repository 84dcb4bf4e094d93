// Package config loads the simulation driver configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the simulation driver.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Pool       PoolConfig       `yaml:"pool"`
	Strategy   string           `yaml:"strategy"` // "round_robin", "least_connections", "p2c"
}

// SimulationConfig configures the synthetic request stream.
type SimulationConfig struct {
	// Requests is the total number of requests to generate.
	Requests int `yaml:"requests"`

	// MinCost and MaxCost bound the uniform random request cost; costs are
	// drawn from [MinCost, MaxCost).
	MinCost uint32 `yaml:"min_cost"`
	MaxCost uint32 `yaml:"max_cost"`

	// DecayEvery triggers load decay after this many requests, modeling
	// request completion. Zero disables decay.
	DecayEvery int `yaml:"decay_every"`

	// DecayAmount is removed from every accelerator at each decay tick.
	DecayAmount uint32 `yaml:"decay_amount"`
}

// PoolConfig configures the accelerator pool.
type PoolConfig struct {
	// Count is the number of accelerators.
	Count int `yaml:"count"`

	// Capacity is the fixed capacity of each accelerator.
	Capacity uint32 `yaml:"capacity"`
}

// DefaultConfig returns the configuration matching the reference workload:
// 10000 accelerators of capacity 100 and 100000 requests with costs in
// [1, 10), decaying 5 load from every accelerator each 100 requests.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Requests:    100000,
			MinCost:     1,
			MaxCost:     10,
			DecayEvery:  100,
			DecayAmount: 5,
		},
		Pool: PoolConfig{
			Count:    10000,
			Capacity: 100,
		},
		Strategy: "p2c",
	}
}

// LoadConfig reads and validates a YAML configuration file.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Parsed configuration
//   - error: Read, parse, or validation failure
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
