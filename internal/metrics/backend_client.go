package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neuronet_client",
		Subsystem: "backend_client",
		Name:      "requests_total",
		Help:      "Count of backend API requests.",
	}, []string{"operation", "profile", "status"})
	backendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "neuronet_client",
		Subsystem: "backend_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of backend API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "profile", "status"})
)

// BackendClient tracks metrics for calls to the backend HTTP API.
type BackendClient struct {
	profile string
}

// NewBackendClient constructs a metrics collector for backend calls.
func NewBackendClient(profile string) *BackendClient {
	if profile == "" {
		profile = "unknown"
	}
	return &BackendClient{profile: profile}
}

// Observe records a single request outcome and duration.
func (m BackendClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	backendRequestsTotal.WithLabelValues(operation, m.profile, status).Inc()
	backendRequestDuration.WithLabelValues(operation, m.profile, status).Observe(time.Since(started).Seconds())
}
