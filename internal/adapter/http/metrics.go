package adapthttp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bmicalc/internal/domain"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bmicalc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bmicalc_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bmicalc_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bmicalc_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)

	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bmicalc_calculations_total",
			Help: "Total number of successful BMI calculations by category",
		},
		[]string{"category"},
	)

	historyRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bmicalc_history_records",
			Help: "Number of calculations currently held in memory",
		},
	)
)

// metricsMiddleware labels requests by the matched route pattern rather than
// the raw path, so ids do not create new series.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" || route == "/" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.Status())).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Observer feeds calculation events into the Prometheus metrics.
type Observer struct{}

// Calculated counts a successful calculation.
func (Observer) Calculated(rec domain.CalculationRecord) {
	calculationsTotal.WithLabelValues(string(rec.Category)).Inc()
}

// HistorySize records the current number of stored calculations.
func (Observer) HistorySize(n int) {
	historyRecords.Set(float64(n))
}
