package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_mutations_total",
			Help: "Lead mutations sent to the backend, by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	draftCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_draft_cycles_total",
			Help: "Settled AI email draft cycles, by phase",
		},
		[]string{"phase"},
	)

	backendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_errors_total",
			Help: "Errors returned by the lead backend, by error code",
		},
		[]string{"code"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern usa o padrão do chi (/leads/{id}) para não explodir a cardinalidade.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func RecordLeadMutation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	leadMutations.WithLabelValues(operation, outcome).Inc()
}

func RecordDraftCycle(phase string) {
	draftCycles.WithLabelValues(phase).Inc()
}

func RecordBackendError(code string) {
	if code == "" {
		code = "UNKNOWN"
	}
	backendErrors.WithLabelValues(code).Inc()
}
