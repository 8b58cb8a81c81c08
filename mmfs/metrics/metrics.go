// Package metrics provides Prometheus metrics for the memory file layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resolve outcomes
const (
	ResolveFound    = "found"
	ResolveNotFound = "not_found"
	ResolveError    = "error"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mymemory_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mymemory_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Walk metrics
	walkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mymemory_walk_duration_seconds",
			Help:    "Time to walk one source root",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "mode"},
	)

	walkItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mymemory_walk_items_total",
			Help: "Total top-level items produced by source walks",
		},
		[]string{"source", "mode"},
	)

	walkErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mymemory_walk_errors_total",
			Help: "Total source walks that failed",
		},
		[]string{"source"},
	)

	// Resolve metrics
	resolveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mymemory_resolve_total",
			Help: "Total path resolutions by outcome",
		},
		[]string{"result"},
	)

	resolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mymemory_resolve_duration_seconds",
			Help:    "Path resolution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Size of the last combined listing
	recordsListed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mymemory_records_listed",
			Help: "Number of records in the most recent full listing",
		},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordWalk records one source walk. mode is "tree" or "records".
func RecordWalk(source, mode string, items int, duration time.Duration, err error) {
	if err != nil {
		walkErrorsTotal.WithLabelValues(source).Inc()
		return
	}
	walkDuration.WithLabelValues(source, mode).Observe(duration.Seconds())
	walkItemsTotal.WithLabelValues(source, mode).Add(float64(items))
}

// RecordResolve records a resolution outcome.
func RecordResolve(found bool, err error, duration time.Duration) {
	result := ResolveFound
	switch {
	case err != nil:
		result = ResolveError
	case !found:
		result = ResolveNotFound
	}
	resolveTotal.WithLabelValues(result).Inc()
	resolveDuration.Observe(duration.Seconds())
}

// SetRecordsListed sets the size of the latest full listing.
func SetRecordsListed(count int) {
	recordsListed.Set(float64(count))
}

// responseWriter wraps http.ResponseWriter to capture status code.
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

// Middleware returns HTTP middleware that records request metrics. Requests
// are labelled with the matched route pattern to keep cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		RecordHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
	})
}
