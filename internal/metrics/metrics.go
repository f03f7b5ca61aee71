// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatRequests counts chat messages by the intent they resolved to
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartoffice_chat_requests_total",
			Help: "Total number of chat messages by resolved intent",
		},
		[]string{"intent"},
	)

	// ChatHistoryFailures counts chat exchanges the chat log failed to store
	ChatHistoryFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartoffice_chat_history_failures_total",
			Help: "Total number of chat exchanges that could not be recorded",
		},
	)

	// HTTPRequests counts HTTP requests by method, route template and status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartoffice_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes HTTP request latency by method and route template
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartoffice_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
