// Package routing assigns incoming computational requests to a pool of
// hardware accelerators, balancing utilization while respecting each
// accelerator's finite capacity.
//
// The core is a routing decision engine: an accelerator capacity ledger
// (types.Accelerator), a pluggable selection strategy (strategy package), and
// a Router that ties request arrival to capacity mutation.
//
// # Quick Start
//
//	import (
//	    routing "github.com/DevJadhav/intelligent-routing"
//	    "github.com/DevJadhav/intelligent-routing/strategy"
//	)
//
//	router, err := routing.NewRouter(strategy.NewPowerOfTwoChoices())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i := 0; i < 4; i++ {
//	    router.AddAccelerator(routing.NewAccelerator(i, 100))
//	}
//
//	id, err := router.RouteRequest(routing.NewRequest(1, 10, 0))
//	if errors.Is(err, routing.ErrNoAcceleratorAvailable) {
//	    // retry, queue, or drop - that policy belongs to the caller
//	}
//
// Declarative construction resolves the strategy by its registry key, the
// surface binding layers use:
//
//	cfg := routing.Config{
//	    Strategy: "least_connections",
//	    Accelerators: []routing.AcceleratorConfig{
//	        {ID: 0, Capacity: 100},
//	        {ID: 1, Capacity: 100},
//	    },
//	}
//	router, err := routing.NewRouterFromConfig(&cfg)
//
// # Built-in Strategies
//
//   - Round Robin ("round_robin"): cyclic fairness with a shared atomic
//     counter and linear probing past unavailable accelerators
//   - Least Connections ("least_connections"): full scan for the lowest
//     current load among available accelerators
//   - Power of Two Choices ("p2c"): two random draws, lower load wins
//
// # Concurrency
//
// All types are safe for concurrent use. Selection reads loads without a
// global lock and may observe stale values; each accelerator re-checks
// capacity inside its own lock at commit time, so a lost race surfaces as a
// routing rejection instead of an overcommitted accelerator. The load
// invariant 0 <= CurrentLoad() <= Capacity() holds at every observable point
// of the ledger operations.
//
// # Observability
//
// Logging and metrics are injected with functional options:
//
//	router, err := routing.NewRouter(strat,
//	    routing.WithLogger(logging.NewSlog(slog.Default())),
//	    routing.WithMetrics(metrics.NewPrometheus(nil, "routing")),
//	)
//
// Both default to no-op implementations.
package routing
