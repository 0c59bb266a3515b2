package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/angeloszaimis/todo-service/internal/metrics"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID returns the id assigned to the request, or "" outside the
// middleware chain.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog assigns each request a uuid, logs it on completion with the
// final status, and emits a metric event. The collector may be nil.
func AccessLog(log *slog.Logger, collector *metrics.Collector, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r.WithContext(ctx))
		duration := time.Since(start)

		log.Info("Handled request",
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", wrapped.statusCode),
			slog.Duration("duration", duration),
			slog.String("user_agent", r.UserAgent()))

		if collector != nil {
			collector.Emit(metrics.Event{
				Type:       metrics.EventResponseCompleted,
				Timestamp:  time.Now(),
				Method:     r.Method,
				Path:       r.URL.Path,
				Duration:   duration,
				StatusCode: wrapped.statusCode,
			})
			if wrapped.statusCode >= http.StatusBadRequest {
				collector.Emit(metrics.Event{
					Type:      metrics.EventRequestRejected,
					Timestamp: time.Now(),
					Method:    r.Method,
					Path:      r.URL.Path,
					Message:   http.StatusText(wrapped.statusCode),
				})
			}
		}
	})
}
