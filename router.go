package routing

import (
	"fmt"
	"sync"
	"time"

	"github.com/DevJadhav/intelligent-routing/internal/logger"
	"github.com/DevJadhav/intelligent-routing/internal/metrics"
	"github.com/DevJadhav/intelligent-routing/strategy"
	"github.com/DevJadhav/intelligent-routing/types"
	"github.com/puzpuzpuz/xsync/v4"
)

// Router assigns incoming requests to accelerators in its pool.
//
// The router owns an ordered pool of accelerators (insertion order is the
// index order strategies see) and exactly one selection strategy, fixed at
// construction. On each RouteRequest it asks the strategy to select, then
// commits the request's cost to the chosen accelerator.
//
// Selection and commit are not one atomic step: concurrent routers of the
// same pool may both pass the strategy's availability check against a stale
// load. Correctness is preserved because Accelerator.AddLoad re-checks
// capacity inside the accelerator's own lock; the loser of the race is
// rejected rather than overcommitted. Router is safe for concurrent use.
type Router struct {
	strat types.SelectionStrategy

	mu   sync.RWMutex
	pool []*types.Accelerator

	logger  types.Logger
	metrics types.MetricsCollector

	admitted *xsync.Counter
	rejected *xsync.Counter
}

// Stats holds cumulative routing counters.
type Stats struct {
	// Admitted is the number of requests committed to an accelerator.
	Admitted int64

	// Rejected is the number of requests that could not be placed.
	Rejected int64
}

// NewRouter creates a router with the given selection strategy.
//
// The strategy is required and immutable for the router's lifetime; there is
// no hot-swap. Use options to inject logging and metrics.
//
// Parameters:
//   - strat: Selection strategy (required)
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Router: Initialized router with an empty pool
//   - error: ErrStrategyRequired when strat is nil
//
// Example:
//
//	router, err := routing.NewRouter(strategy.NewLeastConnections())
//	if err != nil {
//	    return err
//	}
//	router.AddAccelerator(types.NewAccelerator(0, 100))
func NewRouter(strat types.SelectionStrategy, opts ...Option) (*Router, error) {
	if strat == nil {
		return nil, ErrStrategyRequired
	}

	options := &routerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Safe defaults for optional dependencies to avoid nil checks everywhere.
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	r := &Router{
		strat:    strat,
		logger:   loggerInstance,
		metrics:  metricsCollector,
		admitted: xsync.NewCounter(),
		rejected: xsync.NewCounter(),
	}

	r.logger.Info("router created", "strategy", strat.Name())

	return r, nil
}

// NewRouterFromConfig creates a router from a declarative configuration.
//
// The strategy is resolved by its registry key and the pool is populated with
// one accelerator per entry, in order. This is the construction path used by
// binding layers and the simulation driver.
//
// Parameters:
//   - cfg: Router configuration (strategy key + accelerator list)
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Router: Initialized router with a populated pool
//   - error: ErrInvalidConfig or ErrUnknownStrategy on bad configuration
func NewRouterFromConfig(cfg *Config, opts ...Option) (*Router, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	strat, err := strategy.New(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	r, err := NewRouter(strat, opts...)
	if err != nil {
		return nil, err
	}

	for _, ac := range cfg.Accelerators {
		r.AddAccelerator(types.NewAccelerator(ac.ID, ac.Capacity))
	}

	return r, nil
}

// AddAccelerator appends an accelerator to the end of the pool.
//
// The new accelerator's strategy index is the pool size minus one. No
// duplicate-ID checking is performed; callers must ensure uniqueness.
// Removal is not supported.
func (r *Router) AddAccelerator(acc *types.Accelerator) {
	r.mu.Lock()
	r.pool = append(r.pool, acc)
	size := len(r.pool)
	r.mu.Unlock()

	r.metrics.SetPoolSize(size)
	r.metrics.SetAcceleratorLoad(acc.ID(), acc.CurrentLoad(), acc.Capacity())
	r.metrics.SetAcceleratorHealth(acc.ID(), acc.Healthy())
	r.logger.Info("accelerator added",
		"id", acc.ID(),
		"capacity", acc.Capacity(),
		"pool_size", size,
	)
}

// RouteRequest routes one request to an accelerator.
//
// The request lifecycle is submitted → selected → admitted | rejected: the
// strategy picks a candidate, then the request's cost is committed with
// AddLoad. A commit failure (a concurrent router won the remaining capacity,
// or an off-policy strategy returned an over-capacity index) surfaces as a
// rejection; the request is not retried. Retry, queueing, and drop policies
// live with the caller.
//
// Parameters:
//   - req: The request to place
//
// Returns:
//   - int: ID of the admitting accelerator (not necessarily its pool index)
//   - error: ErrNoAcceleratorAvailable when the request cannot be placed
func (r *Router) RouteRequest(req types.Request) (int, error) {
	start := time.Now()

	r.mu.RLock()
	pool := r.pool
	r.mu.RUnlock()

	idx, err := r.strat.Select(pool, req)
	if err != nil {
		r.reject(req, start, "no accelerator selectable")
		return 0, fmt.Errorf("request %d: %w", req.ID, types.ErrNoAcceleratorAvailable)
	}
	if idx < 0 || idx >= len(pool) {
		// Off-policy custom strategy returned a bogus index.
		r.reject(req, start, "strategy returned out-of-range index")
		return 0, fmt.Errorf("request %d: index %d out of range: %w", req.ID, idx, types.ErrNoAcceleratorAvailable)
	}

	acc := pool[idx]
	if err := acc.AddLoad(req.Cost); err != nil {
		// Lost the select-then-commit race or the strategy ignored capacity.
		r.reject(req, start, "commit failed")
		return 0, fmt.Errorf("request %d: accelerator %d rejected commit: %w", req.ID, acc.ID(), types.ErrNoAcceleratorAvailable)
	}

	r.admitted.Inc()
	r.metrics.RecordRouteResult(r.strat.Name(), true)
	r.metrics.RecordRouteDuration(r.strat.Name(), time.Since(start).Seconds())
	r.metrics.SetAcceleratorLoad(acc.ID(), acc.CurrentLoad(), acc.Capacity())
	r.logger.Debug("request admitted",
		"request_id", req.ID,
		"accelerator_id", acc.ID(),
		"cost", req.Cost,
	)

	return acc.ID(), nil
}

func (r *Router) reject(req types.Request, start time.Time, reason string) {
	r.rejected.Inc()
	r.metrics.RecordRouteResult(r.strat.Name(), false)
	r.metrics.RecordRouteDuration(r.strat.Name(), time.Since(start).Seconds())
	r.logger.Debug("request rejected",
		"request_id", req.ID,
		"cost", req.Cost,
		"reason", reason,
	)
}

// Accelerators returns a snapshot of the pool in insertion order.
//
// The slice is a copy but the accelerators are shared, so external
// collaborators (load decay, health checks) operate on the live ledgers.
func (r *Router) Accelerators() []*types.Accelerator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*types.Accelerator, len(r.pool))
	copy(snapshot, r.pool)

	return snapshot
}

// PoolSize returns the current number of accelerators in the pool.
func (r *Router) PoolSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.pool)
}

// StrategyName returns the registry key of the router's strategy.
func (r *Router) StrategyName() string {
	return r.strat.Name()
}

// Stats returns cumulative admitted and rejected counts.
func (r *Router) Stats() Stats {
	return Stats{
		Admitted: r.admitted.Value(),
		Rejected: r.rejected.Value(),
	}
}
