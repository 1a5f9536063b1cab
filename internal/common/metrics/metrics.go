// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_completed_total",
			Help: "Total number of successful signups per activity",
		},
		[]string{"activity"},
	)

	SignupsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_failed_total",
			Help: "Total number of rejected signups",
		},
		[]string{"activity", "error_code"},
	)

	UnregistersCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregisters_completed_total",
			Help: "Total number of successful unregisters per activity",
		},
		[]string{"activity"},
	)

	UnregistersFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregisters_failed_total",
			Help: "Total number of rejected unregisters",
		},
		[]string{"activity", "error_code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route", "status"},
	)

	RosterSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_roster_size",
			Help: "Current number of registered participants per activity",
		},
		[]string{"activity"},
	)
)
