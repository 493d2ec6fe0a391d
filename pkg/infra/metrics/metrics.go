package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var latencyBuckets = []float64{
	5, 10, 25,
	50, 100, 250,
	500, 1000, 2500,
	5000, 10000,
}

var (
	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "safeguard_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safeguard_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "path"},
	)

	VerdictTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "safeguard_moderation_verdicts_total",
			Help: "Moderation verdicts by suggested action",
		},
		[]string{"action"},
	)

	ViolationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "safeguard_moderation_violations_total",
			Help: "Violation categories detected in screened content",
		},
		[]string{"category"},
	)

	RestrictionTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "safeguard_restrictions_applied_total",
			Help: "Administrative moderation actions applied to users",
		},
		[]string{"action"},
	)
)

// Registry exposes the service registry for the /metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
