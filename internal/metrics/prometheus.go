package metrics

import (
	"strconv"
	"sync"

	"github.com/DevJadhav/intelligent-routing/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so constructing the collector
// never fails, and duplicate registration against a shared registerer is
// surfaced by Prometheus itself at that point.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	routeResults  *prometheus.CounterVec
	routeDuration *prometheus.HistogramVec
	poolSize      prometheus.Gauge
	accLoad       *prometheus.GaugeVec
	accCapacity   *prometheus.GaugeVec
	accHealth     *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "routing" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "routing"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.routeResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "router",
			Name:      "requests_total",
			Help:      "Total routing attempts by strategy and result.",
		}, []string{"strategy", "result"})

		p.routeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "router",
			Name:      "route_duration_seconds",
			Help:      "Observed RouteRequest latency in seconds by strategy.",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3},
		}, []string{"strategy"})

		p.poolSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pool",
			Name:      "accelerators",
			Help:      "Current number of accelerators in the pool.",
		})

		p.accLoad = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pool",
			Name:      "accelerator_load",
			Help:      "Current committed load per accelerator.",
		}, []string{"id"})

		p.accCapacity = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pool",
			Name:      "accelerator_capacity",
			Help:      "Fixed capacity per accelerator.",
		}, []string{"id"})

		p.accHealth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pool",
			Name:      "accelerator_healthy",
			Help:      "Health flag per accelerator (1 healthy, 0 unhealthy).",
		}, []string{"id"})

		p.reg.MustRegister(
			p.routeResults,
			p.routeDuration,
			p.poolSize,
			p.accLoad,
			p.accCapacity,
			p.accHealth,
		)
	})
}

// RecordRouteResult increments the routing outcome counter.
func (p *PrometheusCollector) RecordRouteResult(strategy string, admitted bool) {
	p.ensureRegistered()

	result := "admitted"
	if !admitted {
		result = "rejected"
	}
	p.routeResults.WithLabelValues(strategy, result).Inc()
}

// RecordRouteDuration observes the routing latency histogram.
func (p *PrometheusCollector) RecordRouteDuration(strategy string, seconds float64) {
	p.ensureRegistered()
	p.routeDuration.WithLabelValues(strategy).Observe(seconds)
}

// SetPoolSize sets the pool size gauge.
func (p *PrometheusCollector) SetPoolSize(size int) {
	p.ensureRegistered()
	p.poolSize.Set(float64(size))
}

// SetAcceleratorLoad sets the load and capacity gauges for one accelerator.
func (p *PrometheusCollector) SetAcceleratorLoad(id int, load, capacity uint32) {
	p.ensureRegistered()

	label := strconv.Itoa(id)
	p.accLoad.WithLabelValues(label).Set(float64(load))
	p.accCapacity.WithLabelValues(label).Set(float64(capacity))
}

// SetAcceleratorHealth sets the health gauge for one accelerator.
func (p *PrometheusCollector) SetAcceleratorHealth(id int, healthy bool) {
	p.ensureRegistered()

	v := 0.0
	if healthy {
		v = 1.0
	}
	p.accHealth.WithLabelValues(strconv.Itoa(id)).Set(v)
}
