package routing

import "github.com/DevJadhav/intelligent-routing/types"

// Option configures a Router with optional dependencies.
type Option func(*routerOptions)

// routerOptions holds optional Router configuration.
type routerOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewRouter
//
// Example:
//
//	router, err := routing.NewRouter(strat, routing.WithLogger(myLogger))
func WithLogger(logger types.Logger) Option {
	return func(o *routerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewRouter
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "routing")
//	router, err := routing.NewRouter(strat, routing.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *routerOptions) {
		o.metrics = metrics
	}
}
