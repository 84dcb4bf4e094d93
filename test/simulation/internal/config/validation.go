package config

import (
	"errors"
	"fmt"
)

// Validate checks the simulation configuration for consistency.
func (c *Config) Validate() error {
	if c.Simulation.Requests <= 0 {
		return fmt.Errorf("simulation.requests must be positive, got %d", c.Simulation.Requests)
	}
	if c.Simulation.MinCost >= c.Simulation.MaxCost {
		return fmt.Errorf("simulation.min_cost (%d) must be less than simulation.max_cost (%d)",
			c.Simulation.MinCost, c.Simulation.MaxCost)
	}
	if c.Simulation.DecayEvery < 0 {
		return errors.New("simulation.decay_every must not be negative")
	}
	if c.Pool.Count <= 0 {
		return fmt.Errorf("pool.count must be positive, got %d", c.Pool.Count)
	}
	if c.Pool.Capacity == 0 {
		return errors.New("pool.capacity must be positive")
	}
	if c.Strategy == "" {
		return errors.New("strategy must not be empty")
	}

	return nil
}
