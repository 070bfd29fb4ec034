// Package metrics exposes Prometheus collectors for the fuel service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "missionfuel"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10), // 0.5ms to ~250ms
		},
		[]string{"method", "route"},
	)

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "calculations_total",
			Help:      "Total number of fuel calculations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	restarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "supervisor",
			Name:      "restarts_total",
			Help:      "Total number of supervised worker restarts.",
		},
		[]string{"worker"},
	)
)

// Calculation outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		calculations,
		restarts,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps next with HTTP metrics collection. route labels the
// request; it should be a path template, not the raw path.
func InstrumentHandler(route func(*http.Request) string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		label := route(r)
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, label, strconv.Itoa(rec.Status)).Inc()
		httpDuration.WithLabelValues(method, label).Observe(time.Since(start).Seconds())
	})
}

// RecordCalculation counts one engine operation.
func RecordCalculation(operation, outcome string) {
	calculations.WithLabelValues(operation, outcome).Inc()
}

// RecordRestart counts one supervised restart of worker.
func RecordRestart(worker string) {
	if worker == "" {
		worker = "unknown"
	}
	restarts.WithLabelValues(worker).Inc()
}

// StatusRecorder captures the status code written by a handler.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *StatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}
