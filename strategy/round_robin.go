package strategy

import (
	"sync/atomic"

	"github.com/DevJadhav/intelligent-routing/types"
)

// RoundRobin implements cyclic accelerator selection.
//
// A single shared counter is atomically incremented on every call, so one
// instance can be shared by concurrent callers without external locking. When
// the candidate index is unavailable, the strategy probes forward (wrapping)
// until it finds an available accelerator; the counter still advances exactly
// once per call regardless of how many probes occur.
type RoundRobin struct {
	next atomic.Uint64
}

var _ types.SelectionStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy distributes requests cyclically across the pool. This provides
// predictable, even distribution when request costs are uniform but ignores
// the actual load on each accelerator.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	router, err := routing.NewRouter(strategy.NewRoundRobin())
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Select returns the next index in cyclic order, skipping unavailable
// accelerators by linear probing from the candidate.
//
// Returns types.ErrNoAcceleratorAvailable when the pool is empty or every
// accelerator is unavailable.
func (rr *RoundRobin) Select(pool []*types.Accelerator, _ types.Request) (int, error) {
	if len(pool) == 0 {
		return -1, types.ErrNoAcceleratorAvailable
	}

	// Add returns the incremented value; subtracting one yields the value this
	// call claimed, advancing the counter exactly once per call.
	start := int((rr.next.Add(1) - 1) % uint64(len(pool)))

	for i := 0; i < len(pool); i++ {
		idx := (start + i) % len(pool)
		if pool[idx].IsAvailable() {
			return idx, nil
		}
	}

	return -1, types.ErrNoAcceleratorAvailable
}

// Name returns the registry key for this strategy.
func (rr *RoundRobin) Name() string {
	return NameRoundRobin
}
