package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration  *prometheus.HistogramVec
	DBOpenConns      prometheus.Gauge
	DBInUseConns     prometheus.Gauge
	DBIdleConns      prometheus.Gauge
	DBWaitCountTotal prometheus.Gauge

	IVRCallsStarted       prometheus.Counter
	IVRDigits             *prometheus.CounterVec
	IVROutcomes           *prometheus.CounterVec
	IVRActiveCalls        prometheus.Gauge
	IVRCollaboratorErrors *prometheus.CounterVec
}

// New регистрирует метрики в переданном Registerer
// В main передаётся prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database call latency by operation.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Open connections in the database pool.",
		}),
		DBInUseConns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Connections currently in use.",
		}),
		DBIdleConns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_idle_connections",
			Help:      "Idle connections in the pool.",
		}),
		DBWaitCountTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for.",
		}),

		IVRCallsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ivr_calls_started_total",
			Help:      "IVR calls started.",
		}),
		IVRDigits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ivr_digits_total",
			Help:      "DTMF digits handled by the state the call was in.",
		}, []string{"state"}),
		IVROutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ivr_outcomes_total",
			Help:      "Terminal IVR outcomes.",
		}, []string{"outcome"}),
		IVRActiveCalls: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ivr_active_calls",
			Help:      "Sessions held in the call registry.",
		}),
		IVRCollaboratorErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ivr_collaborator_errors_total",
			Help:      "Failed calls to slot, hold and confirmation collaborators.",
		}, []string{"collaborator"}),
	}
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveDB записывает длительность обращения к БД
func (m *Metrics) ObserveDB(operation string, d time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Методы ниже реализуют ivr.Metrics

func (m *Metrics) CallStarted() {
	m.IVRCallsStarted.Inc()
}

func (m *Metrics) DigitHandled(state string) {
	m.IVRDigits.WithLabelValues(state).Inc()
}

func (m *Metrics) CallEnded(outcome string) {
	m.IVROutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ActiveCalls(n int) {
	m.IVRActiveCalls.Set(float64(n))
}

func (m *Metrics) CollaboratorFailed(collaborator string) {
	m.IVRCollaboratorErrors.WithLabelValues(collaborator).Inc()
}
