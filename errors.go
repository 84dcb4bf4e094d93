package routing

import "github.com/DevJadhav/intelligent-routing/types"

// Sentinel errors re-exported from the types package.
//
// The canonical definitions live in types/errors.go so internal packages can
// reference them without importing the root package; these aliases keep
// errors.Is checks working against either name.
var (
	// ErrCapacityExceeded is returned by Accelerator.AddLoad when the
	// increment would exceed capacity.
	ErrCapacityExceeded = types.ErrCapacityExceeded

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrStrategyRequired is returned when the selection strategy is nil.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrNoAcceleratorAvailable is returned by RouteRequest when the request
	// cannot be placed on any accelerator.
	ErrNoAcceleratorAvailable = types.ErrNoAcceleratorAvailable

	// ErrUnknownStrategy is returned when a strategy is requested by an
	// unrecognized name key.
	ErrUnknownStrategy = types.ErrUnknownStrategy
)
