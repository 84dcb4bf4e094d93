package types

// Request describes one unit of work submitted to the Router.
//
// A Request is an immutable value: the caller constructs one per unit of work,
// passes it to exactly one RouteRequest call, then discards it. The router
// retains no reference to the request after the call returns.
type Request struct {
	// ID identifies the request. Uniqueness is the caller's responsibility.
	ID uint64

	// Cost is the amount of load this request commits to the accelerator that
	// admits it.
	Cost uint32

	// Priority is advisory. None of the built-in strategies reorder requests
	// by priority; the field is carried for custom strategies and external
	// queueing layers.
	Priority uint8
}

// NewRequest creates a request value.
//
// Parameters:
//   - id: Caller-assigned request identifier
//   - cost: Load committed to the chosen accelerator on admission
//   - priority: Advisory priority (0-255)
//
// Returns:
//   - Request: Immutable request value
func NewRequest(id uint64, cost uint32, priority uint8) Request {
	return Request{ID: id, Cost: cost, Priority: priority}
}
