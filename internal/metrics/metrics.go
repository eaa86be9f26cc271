package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	EntityConflicts      *prometheus.CounterVec
	EntityNotFound       *prometheus.CounterVec
	UnclassifiedFailures *prometheus.CounterVec

	NotificationsTotal   *prometheus.CounterVec
	NotificationDuration *prometheus.HistogramVec
	BroadcastsTotal      prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EntityConflicts: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sport_entity_conflicts_total",
				Help: "Writes rejected because a uniqueness key already exists",
			},
			[]string{"entity"},
		),
		EntityNotFound: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sport_entity_not_found_total",
				Help: "Operations that referenced a missing record",
			},
			[]string{"entity"},
		),
		UnclassifiedFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sport_entity_failures_total",
				Help: "Operations that failed with an unclassified fault",
			},
			[]string{"entity"},
		),
		NotificationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sport_event_notifications_total",
				Help: "Sport event delivery attempts by channel and result",
			},
			[]string{"channel", "result"},
		),
		NotificationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sport_event_notification_duration_seconds",
				Help:    "Duration of a single sport event delivery attempt",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms .. ~5s
			},
			[]string{"channel"},
		),
		BroadcastsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "sport_event_broadcasts_total",
				Help: "Sport events fanned out to subscribers",
			},
		),
	}
}

func (m *Metrics) RecordConflict(entity string) {
	if m == nil {
		return
	}
	m.EntityConflicts.WithLabelValues(entity).Inc()
}

func (m *Metrics) RecordNotFound(entity string) {
	if m == nil {
		return
	}
	m.EntityNotFound.WithLabelValues(entity).Inc()
}

func (m *Metrics) RecordFailure(entity string) {
	if m == nil {
		return
	}
	m.UnclassifiedFailures.WithLabelValues(entity).Inc()
}

// RecordDelivery records one delivery attempt on channel ("webhook", "kafka").
func (m *Metrics) RecordDelivery(channel string, ok bool, durationSeconds float64) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.NotificationsTotal.WithLabelValues(channel, result).Inc()
	m.NotificationDuration.WithLabelValues(channel).Observe(durationSeconds)
}

func (m *Metrics) RecordBroadcast() {
	if m == nil {
		return
	}
	m.BroadcastsTotal.Inc()
}
