package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kml_smoke_checks_total",
			Help: "Total number of smoke checks by outcome",
		},
		[]string{"check", "outcome"},
	)

	CheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kml_smoke_check_duration_seconds",
			Help:    "Duration of smoke checks in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"check"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kml_smoke_http_requests_total",
			Help: "Total number of outbound requests against the application under test",
		},
		[]string{"method", "host", "status"},
	)

	LastRunSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kml_smoke_last_run_success",
			Help: "1 if the last full run passed, 0 otherwise",
		},
	)
)

// ObserveCheck records the outcome and duration of a single check.
func ObserveCheck(check, outcome string, seconds float64) {
	ChecksTotal.WithLabelValues(check, outcome).Inc()
	CheckDuration.WithLabelValues(check).Observe(seconds)
}

// SetLastRun records whether the last full run passed.
func SetLastRun(ok bool) {
	if ok {
		LastRunSuccess.Set(1)
		return
	}
	LastRunSuccess.Set(0)
}
