// Package metrics exposes Prometheus collectors for HTTP traffic and the inquiry funnel.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"funnel/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "funnel"

// Metrics holds every collector of the service. Collectors are registered on the
// registry passed to New so tests can use an isolated registry.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	inquiriesSubmitted    *prometheus.CounterVec
	reservationTransition *prometheus.CounterVec
	sideEffectFailures    *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers the service collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status_code"},
		),
		inquiriesSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inquiries_submitted_total",
				Help:      "Total number of persisted inquiry submissions",
			},
			[]string{"inquiry_type"},
		),
		reservationTransition: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_transitions_total",
				Help:      "Total number of inquiry status changes by resulting status",
			},
			[]string{"status"},
		),
		sideEffectFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "side_effect_failures_total",
				Help:      "Total number of failed fire-and-forget side effects",
			},
			[]string{"side_effect"},
		),
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// InquirySubmitted records a persisted submission
func (m *Metrics) InquirySubmitted(inquiryType string) {
	m.inquiriesSubmitted.WithLabelValues(inquiryType).Inc()
}

// ReservationTransition records a status change
func (m *Metrics) ReservationTransition(status string) {
	m.reservationTransition.WithLabelValues(status).Inc()
}

// SideEffectFailed records a failed side effect
func (m *Metrics) SideEffectFailed(name string) {
	m.sideEffectFailures.WithLabelValues(name).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
