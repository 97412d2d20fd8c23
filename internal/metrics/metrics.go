package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthdesk_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "healthdesk_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Prediction metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthdesk_predictions_total",
			Help: "Predictions served, by predicted category or \"error\"",
		},
		[]string{"category"},
	)

	ClassifierDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "healthdesk_classifier_duration_seconds",
			Help:    "Classifier call latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthdesk_validation_failures_total",
			Help: "Request bodies rejected by validation",
		},
		[]string{"schema"},
	)

	// Patient store metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthdesk_store_operations_total",
			Help: "Patient store loads and saves, by result",
		},
		[]string{"operation", "result"},
	)
)

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
