package strategy

import (
	"github.com/DevJadhav/intelligent-routing/types"
)

// LeastConnections selects the available accelerator with the lowest current
// load.
//
// The strategy is stateless and only reads the pool, so one instance is safe
// to share across concurrent callers.
type LeastConnections struct{}

var _ types.SelectionStrategy = (*LeastConnections)(nil)

// NewLeastConnections creates a new least-connections strategy.
//
// The strategy scans the full pool on each call, so selection is O(n) in the
// pool size. For very large pools, PowerOfTwoChoices offers a close
// approximation at O(1).
//
// Returns:
//   - *LeastConnections: Initialized least-connections strategy
func NewLeastConnections() *LeastConnections {
	return &LeastConnections{}
}

// Select returns the index of the available accelerator with the strictly
// minimum load. Ties are broken by the earliest index in iteration order.
//
// Returns types.ErrNoAcceleratorAvailable when no accelerator is available.
func (lc *LeastConnections) Select(pool []*types.Accelerator, _ types.Request) (int, error) {
	best := -1
	var bestLoad uint32

	for idx, acc := range pool {
		if !acc.IsAvailable() {
			continue
		}
		load := acc.CurrentLoad()
		// Strict comparison keeps the first occurrence on ties.
		if best == -1 || load < bestLoad {
			best = idx
			bestLoad = load
		}
	}

	if best == -1 {
		return -1, types.ErrNoAcceleratorAvailable
	}

	return best, nil
}

// Name returns the registry key for this strategy.
func (lc *LeastConnections) Name() string {
	return NameLeastConnections
}
