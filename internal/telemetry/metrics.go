package telemetry

import (
	"net/http"

	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/notification"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lounge"

// Metrics owns its registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	BookingsAdmitted     *prometheus.CounterVec
	BookingsRejected     *prometheus.CounterVec
	MachineTransitions   *prometheus.CounterVec
	NotificationsEmitted *prometheus.CounterVec
	APIRequestsTotal     *prometheus.CounterVec
	APIRequestDuration   *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		BookingsAdmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_admitted_total",
			Help:      "Bookings admitted, by machine category.",
		}, []string{"category"}),
		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Booking requests rejected, by reason.",
		}, []string{"reason"}),
		MachineTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "machine_transitions_total",
			Help:      "Machine state transitions, by event and resulting state.",
		}, []string{"event", "state"}),
		NotificationsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_emitted_total",
			Help:      "Renewal and expiry notices emitted, by type.",
		}, []string{"type"}),
		APIRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "endpoint", "status"}),
		APIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint", "status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.BookingsAdmitted,
		m.BookingsRejected,
		m.MachineTransitions,
		m.NotificationsEmitted,
		m.APIRequestsTotal,
		m.APIRequestDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) BookingAdmitted(category machine.Category) {
	m.BookingsAdmitted.WithLabelValues(category.String()).Inc()
}

func (m *Metrics) BookingRejected(reason string) {
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) MachineTransitioned(event machine.Event, to machine.State) {
	m.MachineTransitions.WithLabelValues(event.String(), to.String()).Inc()
}

func (m *Metrics) NotificationEmitted(typ notification.Type) {
	m.NotificationsEmitted.WithLabelValues(string(typ)).Inc()
}
