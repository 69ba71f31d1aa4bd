package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// CountdownTicks counts renderer ticks (the initial render included).
	CountdownTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "countdown_ticks_total",
			Help: "Total number of countdown render ticks",
		},
	)

	// CountdownTargets is the number of reminder targets attached to the running renderer.
	CountdownTargets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "countdown_targets",
			Help: "Number of reminder targets attached to the renderer",
		},
	)

	// CountdownRendered counts target text writes by result (written, skipped).
	CountdownRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "countdown_targets_rendered_total",
			Help: "Total number of reminder target renders by result",
		},
		[]string{"result"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, CountdownTicks, CountdownTargets, CountdownRendered)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordTick records one renderer tick that wrote `written` targets and skipped `skipped`.
func RecordTick(written, skipped int) {
	CountdownTicks.Inc()
	CountdownRendered.WithLabelValues("written").Add(float64(written))
	CountdownRendered.WithLabelValues("skipped").Add(float64(skipped))
}

// SetTargets sets the attached targets gauge (call on renderer start and stop).
func SetTargets(n int) {
	CountdownTargets.Set(float64(n))
}
