// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GenerationDuration tracks remote generation call duration.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Remote generation call duration",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "status"},
	)

	// GenerationsTotal tracks total generation calls.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generations_total",
			Help: "Total remote generation calls",
		},
		[]string{"provider", "task", "status"},
	)

	// NotificationsTotal tracks notifications pushed to the queue.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total notifications pushed",
		},
		[]string{"type"},
	)

	// NotificationQueueDepth tracks the number of retained notifications.
	NotificationQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_queue_depth",
			Help: "Number of notifications currently retained",
		},
	)

	// PersonaSavesTotal tracks persona profile writes.
	PersonaSavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persona_saves_total",
			Help: "Total persona profile saves",
		},
	)

	// AgentPackAppliesTotal tracks agent pack applications by pack id.
	AgentPackAppliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_pack_applies_total",
			Help: "Total agent pack applications",
		},
		[]string{"pack"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordGeneration records metrics for a remote generation call.
func RecordGeneration(provider, task, status string, duration float64) {
	GenerationDuration.WithLabelValues(provider, status).Observe(duration)
	GenerationsTotal.WithLabelValues(provider, task, status).Inc()
}

// RecordNotification records a pushed notification and the new queue depth.
func RecordNotification(typ string, depth int) {
	NotificationsTotal.WithLabelValues(typ).Inc()
	NotificationQueueDepth.Set(float64(depth))
}
