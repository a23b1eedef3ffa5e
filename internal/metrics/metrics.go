package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the directory.
// It includes counters for backend calls and list refreshes,
// gauges for the size of the cached list and the last successful refresh,
// and a histogram for backend call latency.
type Metrics struct {
	APIRequests           *prometheus.CounterVec
	APIRequestDuration    *prometheus.HistogramVec
	Refreshes             *prometheus.CounterVec
	Records               prometheus.Gauge
	LastSuccessfulRefresh prometheus.Gauge
}

// NewMetrics creates a new Metrics instance and registers every collector on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		APIRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "directory_api_requests_total",
			Help: "Total number of calls made to the employee API.",
		}, []string{"operation", "status"}),
		APIRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directory_api_request_duration_seconds",
			Help:    "Duration of calls made to the employee API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}), // operation: 'list', 'create', 'update', 'delete'
		Refreshes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "directory_refreshes_total",
			Help: "Total times the employee list was re-fetched, successfully or not.",
		}, []string{"status"}),
		Records: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "directory_records",
			Help: "Number of employee records currently held in memory.",
		}),
		LastSuccessfulRefresh: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "directory_last_successful_refresh_timestamp",
			Help: "Last time the employee list was fetched successfully.",
		}),
	}

	metrics.Refreshes.WithLabelValues("success")
	metrics.Refreshes.WithLabelValues("failure")

	return metrics
}
