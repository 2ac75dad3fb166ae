// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (articles, sources, ingest runs, notifications)
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "github.com/maviles7/dailydose/internal/observability/metrics"
//
//	func ingest() {
//	    start := time.Now()
//	    // ... process records ...
//	    metrics.RecordIngestRun(time.Since(start))
//	}
package metrics
