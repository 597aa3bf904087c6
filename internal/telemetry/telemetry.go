// Package telemetry exposes the engine's Prometheus counters.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "repasse"

// Metrics methods are safe to call on a nil receiver so that tests and
// callers without a registry can skip instrumentation.
type Metrics struct {
	registry         *prometheus.Registry
	releasesAdvanced prometheus.Counter
	releasesSkipped  *prometheus.CounterVec
	conflictsRetried *prometheus.CounterVec
	overdueMarked    prometheus.Counter
	jobDuration      *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		releasesAdvanced: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "releases_advanced_total",
			Help:      "Transactions moved from pendente to liberado",
		}),
		releasesSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "releases_skipped_total",
			Help:      "Claimed transactions left for a later run",
		}, []string{"reason"}),
		conflictsRetried: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflicts_retried_total",
			Help:      "Optimistic version conflicts that triggered a retry",
		}, []string{"operation"}),
		overdueMarked: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "installments_overdue_marked_total",
			Help:      "Installments flipped from pendente to atrasada",
		}),
		jobDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Duration of background job runs",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"job"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) ReleaseAdvanced() {
	if m == nil {
		return
	}
	m.releasesAdvanced.Inc()
}

func (m *Metrics) ReleaseSkipped(reason string) {
	if m == nil {
		return
	}
	m.releasesSkipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) ConflictRetried(operation string) {
	if m == nil {
		return
	}
	m.conflictsRetried.WithLabelValues(operation).Inc()
}

func (m *Metrics) OverdueMarked(n int) {
	if m == nil {
		return
	}
	m.overdueMarked.Add(float64(n))
}

// ObserveJob records the time since start for job.
func (m *Metrics) ObserveJob(job string, start time.Time) {
	if m == nil {
		return
	}
	m.jobDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts requests by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
