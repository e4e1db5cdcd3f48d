package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraudlens",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fraudlens",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fraudlens",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	signupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fraudlens",
			Subsystem: "auth",
			Name:      "signups_total",
			Help:      "Total number of account registrations",
		},
	)

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraudlens",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	casesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fraudlens",
			Subsystem: "cases",
			Name:      "created_total",
			Help:      "Total number of fraud-analysis cases created",
		},
	)

	caseUploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fraudlens",
			Subsystem: "cases",
			Name:      "uploads_total",
			Help:      "Total number of case file uploads",
		},
	)

	usageResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fraudlens",
			Subsystem: "subscription",
			Name:      "usage_resets_total",
			Help:      "Total number of monthly usage counter resets",
		},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordSignup records a successful registration
func RecordSignup() {
	signupsTotal.Inc()
}

// RecordLogin records a login attempt outcome ("success" or "failure")
func RecordLogin(outcome string) {
	loginsTotal.WithLabelValues(outcome).Inc()
}

// RecordCaseCreated records a created case
func RecordCaseCreated() {
	casesCreatedTotal.Inc()
}

// RecordCaseUpload records an uploaded case file
func RecordCaseUpload() {
	caseUploadsTotal.Inc()
}

// RecordUsageReset records a monthly usage counter reset run
func RecordUsageReset() {
	usageResetsTotal.Inc()
}
