package types

import "errors"

// Sentinel errors for the intelligent-routing library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Accelerator errors - returned by the capacity ledger.
var (
	// ErrCapacityExceeded is returned by AddLoad when the increment would push
	// the current load above capacity. The load is left unchanged.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// Router errors - public API errors returned by the Router component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStrategyRequired is returned when the selection strategy is nil.
	ErrStrategyRequired = errors.New("selection strategy is required")

	// ErrNoAcceleratorAvailable is returned by RouteRequest when the pool is
	// empty, every accelerator is unhealthy or full, or the chosen accelerator
	// lost capacity between selection and commit. Callers decide whether to
	// retry, queue, or drop the request.
	ErrNoAcceleratorAvailable = errors.New("no accelerator available")
)

// Strategy errors - returned at the strategy construction boundary.
var (
	// ErrUnknownStrategy is returned when a strategy is requested by an
	// unrecognized name key.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
