package strategy

import (
	"fmt"

	"github.com/DevJadhav/intelligent-routing/types"
)

// Registry keys for the built-in strategies.
//
// These are the names accepted by New and by Config.Strategy in the root
// package, and the values reported by each strategy's Name method. Binding
// layers that expose strategy selection to other runtimes should use these
// keys verbatim.
const (
	// NameRoundRobin selects the RoundRobin strategy.
	NameRoundRobin = "round_robin"

	// NameLeastConnections selects the LeastConnections strategy.
	NameLeastConnections = "least_connections"

	// NameP2C selects the PowerOfTwoChoices strategy.
	NameP2C = "p2c"
)

// New creates a built-in strategy by its registry key.
//
// Each call returns a fresh instance; in particular, two routers built from
// the same key do not share a RoundRobin counter.
//
// Parameters:
//   - name: Registry key ("round_robin", "least_connections", or "p2c")
//
// Returns:
//   - types.SelectionStrategy: The constructed strategy
//   - error: types.ErrUnknownStrategy for an unrecognized key
//
// Example:
//
//	strat, err := strategy.New("p2c")
//	if err != nil {
//	    return err
//	}
//	router, err := routing.NewRouter(strat)
func New(name string) (types.SelectionStrategy, error) {
	switch name {
	case NameRoundRobin:
		return NewRoundRobin(), nil
	case NameLeastConnections:
		return NewLeastConnections(), nil
	case NameP2C:
		return NewPowerOfTwoChoices(), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, types.ErrUnknownStrategy)
	}
}

// Names returns the registry keys of all built-in strategies.
func Names() []string {
	return []string{NameRoundRobin, NameLeastConnections, NameP2C}
}
