package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called from concurrent routing goroutines and must be
// thread-safe.
//
// The interface composes smaller, domain-focused interfaces so custom
// collectors can embed a no-op implementation and override selectively.
type MetricsCollector interface {
	RouterMetrics
	PoolMetrics
}

// RouterMetrics defines metrics for routing decisions.
type RouterMetrics interface {
	// RecordRouteResult records the outcome of one RouteRequest call.
	//
	// Parameters:
	//   - strategy: Strategy name key (e.g. "round_robin")
	//   - admitted: true when the request was committed, false on rejection
	RecordRouteResult(strategy string, admitted bool)

	// RecordRouteDuration records the latency of one RouteRequest call.
	//
	// Parameters:
	//   - strategy: Strategy name key
	//   - seconds: Time taken in seconds
	RecordRouteDuration(strategy string, seconds float64)
}

// PoolMetrics defines metrics for accelerator pool state.
type PoolMetrics interface {
	// SetPoolSize sets the current number of accelerators in the pool.
	SetPoolSize(size int)

	// SetAcceleratorLoad sets the current load gauge for one accelerator.
	//
	// Parameters:
	//   - id: Accelerator identifier
	//   - load: Current committed load
	//   - capacity: Fixed capacity, exported alongside load for ratio queries
	SetAcceleratorLoad(id int, load, capacity uint32)

	// SetAcceleratorHealth sets the health gauge for one accelerator.
	SetAcceleratorHealth(id int, healthy bool)
}
