package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AuditEventsPublished      prometheus.Counter
	AuditEventPublishFailures prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		AuditEventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kredi_audit_events_published_total",
			Help: "Total number of audit events successfully published to Kafka",
		}),
		AuditEventPublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kredi_audit_event_publish_failures_total",
			Help: "Total number of audit events that failed to publish to Kafka",
		}),
	}
}

func (m *Metrics) IncrementPublished() {
	m.AuditEventsPublished.Inc()
}

func (m *Metrics) IncrementPublishFailures() {
	m.AuditEventPublishFailures.Inc()
}
