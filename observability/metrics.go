package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for meteogram fetches and rewrites.
type Metrics struct {
	FetchRequests *prometheus.CounterVec // labels: outcome={success,http_error,network_error}
	FetchDuration prometheus.Histogram
	FetchBytes    prometheus.Histogram

	Transforms *prometheus.CounterVec // labels: transform={crop,transparent,unhide_dark}, result={applied,noop}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meteogram",
			Name:      "fetch_requests_total",
			Help:      "Meteogram requests to yr.no by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "meteogram",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a meteogram request including the body read.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FetchBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "meteogram",
			Name:      "fetch_bytes",
			Help:      "Size of fetched meteogram documents.",
			Buckets:   prometheus.ExponentialBuckets(4096, 2, 8),
		}),
		Transforms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meteogram",
			Name:      "transforms_total",
			Help:      "Requested rewrites by transform and whether they changed the document.",
		}, []string{"transform", "result"}),
	}

	reg.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.FetchBytes,
		m.Transforms,
	)

	return m
}
