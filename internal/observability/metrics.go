package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the engine.
type Metrics struct {
	AnnouncementsIngested  prometheus.Counter
	DuplicateAnnouncements prometheus.Counter
	UnresolvedDescriptors  prometheus.Counter
	PairsMatched           prometheus.Counter

	NotificationsSent      prometheus.Counter
	NotificationsDeferred  prometheus.Counter
	NotificationsFailed    prometheus.Counter
	NotificationsExhausted prometheus.Counter

	DispatchDuration prometheus.Histogram
}

// New creates the engine metrics and registers them with reg. Tests pass a
// fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AnnouncementsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "announcements_ingested_total",
			Help:      "New announcements stored by the ingestor.",
		}),
		DuplicateAnnouncements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "announcements_duplicate_total",
			Help:      "Re-ingestions dropped by the fingerprint gate.",
		}),
		UnresolvedDescriptors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "place_descriptors_unresolved_total",
			Help:      "Place descriptors that failed to resolve above threshold.",
		}),
		PairsMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "pairs_matched_total",
			Help:      "Candidate (subscriber, announcement) pairs produced by the matcher.",
		}),
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "notifications_sent_total",
			Help:      "Delivery tasks acknowledged by the dispatcher.",
		}),
		NotificationsDeferred: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "notifications_deferred_total",
			Help:      "Deliveries deferred by quiet hours.",
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "notifications_failed_total",
			Help:      "Dispatch attempts that failed and will be retried.",
		}),
		NotificationsExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outage_notifier",
			Name:      "notifications_exhausted_total",
			Help:      "Pairs marked permanently failed after the retry budget.",
		}),
		DispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "outage_notifier",
			Name:      "dispatch_duration_seconds",
			Help:      "Duration of one dispatcher call.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	reg.MustRegister(
		m.AnnouncementsIngested,
		m.DuplicateAnnouncements,
		m.UnresolvedDescriptors,
		m.PairsMatched,
		m.NotificationsSent,
		m.NotificationsDeferred,
		m.NotificationsFailed,
		m.NotificationsExhausted,
		m.DispatchDuration,
	)

	return m
}
