package types

// SelectionStrategy picks an accelerator from the pool for a request.
//
// Built-in strategies (see the strategy package):
//   - RoundRobin: Cyclic distribution with linear probing past unavailable units
//   - LeastConnections: Lowest current load among available units
//   - PowerOfTwoChoices: Two random candidates, lower load wins
//
// The Router calls Select on every RouteRequest with a snapshot of the current
// pool; the index returned refers to that snapshot (insertion order).
//
// Strategy implementations should:
//   - Never mutate the pool (selection reads, the Router commits)
//   - Handle edge cases (empty pool, all accelerators unavailable)
//   - Run quickly (called on the hot path)
//   - Be safe for concurrent callers sharing one instance
type SelectionStrategy interface {
	// Select returns the pool index of the chosen accelerator.
	//
	// The selected accelerator must be available at the time of the check;
	// the Router still re-validates capacity at commit time, since loads may
	// change between selection and commit.
	//
	// Parameters:
	//   - pool: Ordered accelerator pool (insertion order)
	//   - req: The request being routed
	//
	// Returns:
	//   - int: Index into pool of the chosen accelerator
	//   - error: ErrNoAcceleratorAvailable when nothing is selectable
	Select(pool []*Accelerator, req Request) (int, error)

	// Name returns the strategy's registry key (e.g. "round_robin").
	Name() string
}
