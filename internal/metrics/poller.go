package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neuronet_client",
		Subsystem: "poller",
		Name:      "cycle_total",
		Help:      "Count of network poll cycles.",
	}, []string{"page", "status"})

	pollCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "neuronet_client",
		Subsystem: "poller",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of a network poll cycle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"page", "status"})

	pollRecentBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "neuronet_client",
		Subsystem: "poller",
		Name:      "recent_blocks",
		Help:      "Number of rows rendered in the recent blocks panel.",
	}, []string{"page"})

	pollBlockHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "neuronet_client",
		Subsystem: "poller",
		Name:      "block_height",
		Help:      "Last observed blockchain length.",
	}, []string{"page"})
)

// Poller tracks metrics for the network poller.
type Poller struct {
	page string
}

// NewPoller constructs a Poller with defaults.
func NewPoller(page string) *Poller {
	if page == "" {
		page = "unknown"
	}
	return &Poller{page: page}
}

// ObserveCycle records a poll cycle outcome and duration.
func (m Poller) ObserveCycle(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pollCycleTotal.WithLabelValues(m.page, status).Inc()
	pollCycleDuration.WithLabelValues(m.page, status).Observe(time.Since(started).Seconds())
}

// ObserveHeight records the last blockchain length.
func (m Poller) ObserveHeight(height int64) {
	pollBlockHeight.WithLabelValues(m.page).Set(float64(height))
}

// ObserveRecentBlocks records how many recent block rows were rendered.
func (m Poller) ObserveRecentBlocks(rows int) {
	pollRecentBlocks.WithLabelValues(m.page).Set(float64(rows))
}
