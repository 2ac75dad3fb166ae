package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maviles7/dailydose/internal/handler/http/pathutil"
	"github.com/maviles7/dailydose/internal/handler/http/responsewriter"
	"github.com/maviles7/dailydose/internal/observability/metrics"
)

// MetricsMiddleware records HTTP request metrics: in-flight gauge, duration,
// request and response sizes, and status code distribution. Paths are
// normalized (/articles/123 -> /articles/:id) to keep label cardinality bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		requestSize := 0
		if r.ContentLength > 0 {
			requestSize = int(r.ContentLength)
		}

		wrapped := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start)

		status := strconv.Itoa(wrapped.StatusCode())
		metrics.RecordHTTPRequest(r.Method, normalizedPath, status, duration, requestSize, wrapped.BytesWritten())
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
