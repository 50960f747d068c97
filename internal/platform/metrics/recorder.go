package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
)

const namespace = "investment_admin"

// Recorder exports decision metrics to Prometheus.
type Recorder struct {
	decisions        *prometheus.CounterVec
	decisionDuration *prometheus.HistogramVec
	retries          *prometheus.CounterVec
	sideEffectErrors *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

var _ portssvc.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Investment decisions by action and outcome.",
		}, []string{"action", "outcome"}),
		decisionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decision_duration_seconds",
			Help:      "Latency of investment decisions in seconds, retries included.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"action"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_retries_total",
			Help:      "Units of work retried after a concurrent modification.",
		}, []string{"action"}),
		sideEffectErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Best-effort side effects that failed after commit.",
		}, []string{"effect"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		r.decisions,
		r.decisionDuration,
		r.retries,
		r.sideEffectErrors,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

func (r *Recorder) DecisionCompleted(action domain.AuditAction, outcome string, elapsed time.Duration) {
	r.decisions.WithLabelValues(string(action), outcome).Inc()
	r.decisionDuration.WithLabelValues(string(action)).Observe(elapsed.Seconds())
}

func (r *Recorder) TransactionRetried(action domain.AuditAction) {
	r.retries.WithLabelValues(string(action)).Inc()
}

func (r *Recorder) SideEffectFailed(effect string) {
	r.sideEffectErrors.WithLabelValues(effect).Inc()
}
