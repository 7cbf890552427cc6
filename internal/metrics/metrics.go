package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the service
type MetricsRegistry struct {
	Gatherer prometheus.Gatherer

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	PostingsTotal             *prometheus.CounterVec
	EnrollmentsTotal          *prometheus.CounterVec
	OrganizationRequestsTotal *prometheus.CounterVec

	// Mail Metrics
	MailTotal       *prometheus.CounterVec
	MailQueueLength prometheus.Gauge
}

// NewMetricsRegistry registers every metric on a fresh registry.
func NewMetricsRegistry() *MetricsRegistry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewMetricsRegistryWith(reg, reg)
}

// NewMetricsRegistryWith registers every metric on the given registerer.
func NewMetricsRegistryWith(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *MetricsRegistry {
	factory := promauto.With(registerer)

	return &MetricsRegistry{
		Gatherer: gatherer,

		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteerhub_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "volunteerhub_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "volunteerhub_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteerhub_cache_hits_total",
				Help: "Total cache hits by cache name",
			},
			[]string{"cache"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteerhub_cache_misses_total",
				Help: "Total cache misses by cache name",
			},
			[]string{"cache"},
		),

		// Business Metrics
		PostingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteerhub_postings_total",
				Help: "Posting writes by action (created, updated, deleted)",
			},
			[]string{"action"},
		),
		EnrollmentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteerhub_enrollments_total",
				Help: "Enrollment transitions by action (applied, enrolled, accepted, rejected, withdrawn)",
			},
			[]string{"action"},
		),
		OrganizationRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteerhub_organization_requests_total",
				Help: "Organization requests by action (submitted, approved, rejected)",
			},
			[]string{"action"},
		),

		// Mail Metrics
		MailTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteerhub_mail_total",
				Help: "Outbound mails by kind and result (sent, failed, queued)",
			},
			[]string{"kind", "result"},
		),
		MailQueueLength: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "volunteerhub_mail_queue_length",
				Help: "Entries currently in the mail outbox stream",
			},
		),
	}
}
