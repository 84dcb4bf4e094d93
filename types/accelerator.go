package types

import (
	"fmt"
	"sync"
)

// Accelerator is the capacity ledger for a single compute unit (GPU/TPU-like).
//
// It tracks the current committed load against a fixed capacity and a health
// flag. The invariant 0 <= CurrentLoad() <= Capacity() holds at every
// observable point for the ledger operations; UpdateLoad is the one documented
// bypass, reserved for external load-sync collaborators.
//
// All methods are safe for concurrent use. AddLoad re-checks capacity inside
// the accelerator's own lock, so a stale load observed by a strategy cannot
// cause the invariant to be violated at commit time.
type Accelerator struct {
	id       int
	capacity uint32

	mu      sync.RWMutex
	load    uint32
	healthy bool
}

// NewAccelerator creates an accelerator with zero load and healthy status.
//
// Parameters:
//   - id: Accelerator identifier (uniqueness is the caller's responsibility)
//   - capacity: Fixed maximum load the accelerator may carry
//
// Returns:
//   - *Accelerator: Initialized accelerator ledger
//
// Example:
//
//	acc := types.NewAccelerator(0, 100)
//	err := acc.AddLoad(10)
func NewAccelerator(id int, capacity uint32) *Accelerator {
	return &Accelerator{
		id:       id,
		capacity: capacity,
		healthy:  true,
	}
}

// ID returns the accelerator identifier.
func (a *Accelerator) ID() int {
	return a.id
}

// Capacity returns the fixed maximum load, set at construction.
func (a *Accelerator) Capacity() uint32 {
	return a.capacity
}

// CurrentLoad returns the load currently committed to the accelerator.
func (a *Accelerator) CurrentLoad() uint32 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.load
}

// Healthy reports the externally managed health flag.
func (a *Accelerator) Healthy() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.healthy
}

// SetHealthy toggles the health flag.
//
// Health is set by an external health-check collaborator, not derived from
// load. An unhealthy accelerator is never selected regardless of remaining
// capacity.
func (a *Accelerator) SetHealthy(healthy bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.healthy = healthy
}

// IsAvailable reports whether the accelerator can accept more work.
//
// Returns true iff the accelerator is healthy and has remaining capacity.
func (a *Accelerator) IsAvailable() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.healthy && a.load < a.capacity
}

// AddLoad commits additional load to the accelerator.
//
// The operation is atomic-or-nothing: either the load increases by exactly
// amount and nil is returned, or the load is left unchanged and an error
// wrapping ErrCapacityExceeded is returned. The capacity check happens inside
// the lock, so concurrent callers cannot jointly overcommit.
//
// Parameters:
//   - amount: Load to commit
//
// Returns:
//   - error: nil on success, ErrCapacityExceeded when amount does not fit
func (a *Accelerator) AddLoad(amount uint32) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Compare against remaining headroom to avoid uint32 overflow in load+amount.
	// A load pushed above capacity via UpdateLoad leaves zero headroom.
	if a.load > a.capacity || amount > a.capacity-a.load {
		return fmt.Errorf("accelerator %d: load %d + %d exceeds capacity %d: %w",
			a.id, a.load, amount, a.capacity, ErrCapacityExceeded)
	}

	a.load += amount

	return nil
}

// RemoveLoad releases previously committed load.
//
// Removal never fails: removing more than the current load clamps the load to
// zero instead of underflowing.
//
// Parameters:
//   - amount: Load to release
func (a *Accelerator) RemoveLoad(amount uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.load {
		a.load = 0
		return
	}

	a.load -= amount
}

// UpdateLoad overwrites the current load unconditionally.
//
// This bypasses the capacity check and exists for external load-sync
// collaborators that reconcile the ledger against measured telemetry. Callers
// are responsible for respecting capacity semantics; values above capacity
// make the accelerator unavailable until the load decays below capacity again.
//
// Parameters:
//   - load: New current load value
func (a *Accelerator) UpdateLoad(load uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.load = load
}
