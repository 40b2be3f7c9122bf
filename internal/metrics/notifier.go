package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsShownTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neuronet_client",
		Subsystem: "notifier",
		Name:      "shown_total",
		Help:      "Count of notifications shown, by kind.",
	}, []string{"kind"})

	notificationsRemovedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neuronet_client",
		Subsystem: "notifier",
		Name:      "removed_total",
		Help:      "Count of notifications removed, by reason.",
	}, []string{"reason"})

	notificationsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "neuronet_client",
		Subsystem: "notifier",
		Name:      "active",
		Help:      "Number of notifications currently visible.",
	})
)

// Notifier tracks metrics for the notification presenter.
type Notifier struct{}

// NewNotifier constructs a Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// ObserveShown records a newly shown notification.
func (Notifier) ObserveShown(kind string, active int) {
	notificationsShownTotal.WithLabelValues(kind).Inc()
	notificationsActive.Set(float64(active))
}

// ObserveRemoved records a notification removal, either "expired" or "dismissed".
func (Notifier) ObserveRemoved(reason string, active int) {
	notificationsRemovedTotal.WithLabelValues(reason).Inc()
	notificationsActive.Set(float64(active))
}
