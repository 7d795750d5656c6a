// Package metrics registers the Prometheus collectors of the service:
// HTTP request counters/latencies and SQL statement latencies.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts HTTP requests by route and status.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbnb_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration records request latency in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lightbnb_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// QueryDuration records how long each SQL statement took, labelled by
	// statement kind (SELECT, INSERT, ...) and outcome (ok, error).
	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lightbnb_db_statement_duration_seconds",
			Help:    "Duration of SQL statements in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"kind", "outcome"},
	)

	registerOnce sync.Once
)

// Register adds all collectors to the default registry. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDuration, QueryDuration)
	})
}

// ObserveStatement records the latency of one SQL statement.
func ObserveStatement(query string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	QueryDuration.WithLabelValues(StatementKind(query), outcome).Observe(time.Since(start).Seconds())
}

// StatementKind returns the upper-cased leading keyword of query.
func StatementKind(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}

// Middleware records request metrics for every handled request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			RequestCounter.WithLabelValues(labels...).Inc()
			RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
