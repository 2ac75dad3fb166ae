// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Automatic HTTP request tracing via middleware
//   - W3C Trace Context propagation from incoming requests
//   - Trace ID exposure through the X-Trace-Id response header
//
// Example usage:
//
//	import "github.com/maviles7/dailydose/internal/observability/tracing"
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ... process request ...
//	}
package tracing
