package routing

import "github.com/DevJadhav/intelligent-routing/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces using type aliases. Internal packages depend on the types
// subpackage directly, avoiding import cycles, while users get the convenient
// routing.Request, routing.Accelerator, etc.
type (
	Accelerator = types.Accelerator
	Request     = types.Request
)

// Re-export interfaces from the types subpackage for convenience.
type (
	SelectionStrategy = types.SelectionStrategy
	Logger            = types.Logger
	MetricsCollector  = types.MetricsCollector
)

// NewAccelerator creates an accelerator with zero load and healthy status.
// See types.NewAccelerator.
func NewAccelerator(id int, capacity uint32) *Accelerator {
	return types.NewAccelerator(id, capacity)
}

// NewRequest creates a request value. See types.NewRequest.
func NewRequest(id uint64, cost uint32, priority uint8) Request {
	return types.NewRequest(id, cost, priority)
}
