package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the booking and payment metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	PaymentTransitionsTotal *prometheus.CounterVec
	WebhooksTotal           *prometheus.CounterVec
	GatewayRequestsTotal    *prometheus.CounterVec
	GatewayRequestDuration  *prometheus.HistogramVec
	IntentsCreatedTotal     *prometheus.CounterVec
	AvailabilityQueries     *prometheus.CounterVec
}

// New creates metrics registered on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "hotelres"
	}
	factory := promauto.With(reg)

	return &Metrics{
		PaymentTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payment",
				Name:      "transitions_total",
				Help:      "Payment status transitions by source",
			},
			[]string{"source", "from", "to"},
		),
		WebhooksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payment",
				Name:      "webhooks_total",
				Help:      "Gateway webhook deliveries by outcome",
			},
			[]string{"outcome"}, // applied, noop, dropped, error
		),
		GatewayRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "requests_total",
				Help:      "Payment gateway calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		GatewayRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "request_duration_seconds",
				Help:      "Payment gateway call duration in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		IntentsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "intents_total",
				Help:      "Reservation intent creation attempts by outcome",
			},
			[]string{"outcome"}, // created, no_availability, invalid
		),
		AvailabilityQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "availability_queries_total",
				Help:      "Availability and calendar queries by kind",
			},
			[]string{"kind"},
		),
	}
}

// RecordTransition records a payment status change.
func (m *Metrics) RecordTransition(source, from, to string) {
	if m == nil {
		return
	}
	m.PaymentTransitionsTotal.WithLabelValues(source, from, to).Inc()
}

// RecordWebhook records a webhook delivery outcome.
func (m *Metrics) RecordWebhook(outcome string) {
	if m == nil {
		return
	}
	m.WebhooksTotal.WithLabelValues(outcome).Inc()
}

// RecordGatewayCall records a gateway call.
func (m *Metrics) RecordGatewayCall(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.GatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordIntent records an intent creation outcome.
func (m *Metrics) RecordIntent(outcome string) {
	if m == nil {
		return
	}
	m.IntentsCreatedTotal.WithLabelValues(outcome).Inc()
}

// RecordAvailabilityQuery records an availability lookup.
func (m *Metrics) RecordAvailabilityQuery(kind string) {
	if m == nil {
		return
	}
	m.AvailabilityQueries.WithLabelValues(kind).Inc()
}
