// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/DevJadhav/intelligent-routing/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RouterMetrics implementation

// RecordRouteResult discards the routing outcome metric.
func (n *NopMetrics) RecordRouteResult(_ /* strategy */ string, _ /* admitted */ bool) {
	// No-op
}

// RecordRouteDuration discards the routing latency metric.
func (n *NopMetrics) RecordRouteDuration(_ /* strategy */ string, _ /* seconds */ float64) {
	// No-op
}

// PoolMetrics implementation

// SetPoolSize discards the pool size metric.
func (n *NopMetrics) SetPoolSize(_ /* size */ int) {
	// No-op
}

// SetAcceleratorLoad discards the accelerator load metric.
func (n *NopMetrics) SetAcceleratorLoad(_ /* id */ int, _ /* load */, _ /* capacity */ uint32) {
	// No-op
}

// SetAcceleratorHealth discards the accelerator health metric.
func (n *NopMetrics) SetAcceleratorHealth(_ /* id */ int, _ /* healthy */ bool) {
	// No-op
}
