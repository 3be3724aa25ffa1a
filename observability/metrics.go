// Package observability provides Prometheus metrics for monitoring node
// API traffic.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the client.
type Metrics struct {
	// RPC metrics
	RPCCallsTotal  *prometheus.CounterVec
	RPCCallLatency *prometheus.HistogramVec

	// Subscription metrics
	WSNotificationsTotal *prometheus.CounterVec
	ActiveSubscriptions  prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates a Metrics instance backed by its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "solana_web_sdk"
	}
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		// RPC metrics
		RPCCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "calls_total",
			Help:      "Total number of node API calls by method and outcome",
		}, []string{"method", "status"}),
		RPCCallLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "call_latency_seconds",
			Help:      "Node API call latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),

		// Subscription metrics
		WSNotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "notifications_total",
			Help:      "Total number of subscription notifications by type",
		}, []string{"type"}),
		ActiveSubscriptions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "active_subscriptions",
			Help:      "Current number of active subscriptions",
		}),
	}
}

// Handler returns an HTTP handler serving the metrics in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, for tests and exporters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
