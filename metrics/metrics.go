// Package metrics holds the prometheus collectors of the resolution service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "livelink",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "livelink",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   []float64{0.05, 0.1, 0.3, 0.5, 1, 2, 5, 10},
	}, []string{"method", "path"})

	ResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "livelink",
		Name:      "resolutions_total",
		Help:      "Resolutions by the strategy that answered, or the failure kind.",
	}, []string{"outcome"})

	ResolutionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "livelink",
		Name:      "resolution_duration_seconds",
		Help:      "Time spent resolving a room, fetches included.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 15},
	})

	GatewayFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "livelink",
		Name:      "gateway_fallbacks_total",
		Help:      "Resolutions where the gateway was asked but the chain answered.",
	})
)

// Register adds the collectors to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ResolutionsTotal,
		ResolutionDuration,
		GatewayFallbacksTotal,
	)
}
