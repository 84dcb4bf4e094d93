package routing

import (
	"fmt"

	"github.com/DevJadhav/intelligent-routing/strategy"
)

// AcceleratorConfig declares one accelerator in the pool.
type AcceleratorConfig struct {
	// ID is the accelerator identifier. IDs must be unique within a config;
	// Validate enforces this even though the Router itself does not.
	ID int `yaml:"id"`

	// Capacity is the fixed maximum load the accelerator may carry.
	Capacity uint32 `yaml:"capacity"`
}

// Config is the declarative configuration for NewRouterFromConfig.
type Config struct {
	// Strategy is the selection strategy registry key:
	// "round_robin", "least_connections", or "p2c".
	// Defaults to "round_robin" when empty.
	Strategy string `yaml:"strategy"`

	// Accelerators declares the initial pool, in index order.
	Accelerators []AcceleratorConfig `yaml:"accelerators"`
}

// SetDefaults fills in missing configuration values.
func (c *Config) SetDefaults() {
	if c.Strategy == "" {
		c.Strategy = strategy.NameRoundRobin
	}
}

// Validate checks the configuration for consistency.
//
// Returns:
//   - error: Wrapping ErrInvalidConfig with a description, or nil
func (c *Config) Validate() error {
	if c.Strategy == "" {
		return fmt.Errorf("%w: strategy must not be empty", ErrInvalidConfig)
	}

	seen := make(map[int]struct{}, len(c.Accelerators))
	for i, ac := range c.Accelerators {
		if _, dup := seen[ac.ID]; dup {
			return fmt.Errorf("%w: duplicate accelerator id %d at index %d", ErrInvalidConfig, ac.ID, i)
		}
		seen[ac.ID] = struct{}{}
	}

	return nil
}
