// Package metrics provides real-time request metrics for the todo service.
//
// It uses a channel-based event pipeline: the access-log middleware emits one
// event per completed request with non-blocking semantics, and a dedicated
// goroutine folds events into thread-safe counters. A JSON snapshot with
// request counts per method, status-code distribution, rejection counts, and
// latency percentiles is served at /metrics.
package metrics
