package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hairizuanbinnoorazman/qa-copilot/internal/uuidutil"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a request ID to the context and the response.
// A usable incoming X-Request-ID is kept, otherwise a new one is generated.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuidutil.RequestIDOrNew(r.Header.Get(RequestIDHeader))
		w.Header().Set(RequestIDHeader, id)
		ctx := logger.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// LoggingMiddleware logs one entry per request once the handler returns.
type LoggingMiddleware struct {
	logger logger.Logger
}

// NewLoggingMiddleware creates a new request logging middleware.
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: log}
}

// Handler wraps an HTTP handler with request logging.
func (m *LoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		fields := map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      status,
			"bytes":       rec.bytes,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			m.logger.Error(r.Context(), "request failed", fields)
		case status >= http.StatusBadRequest:
			m.logger.Warn(r.Context(), "request rejected", fields)
		default:
			m.logger.Info(r.Context(), "request completed", fields)
		}
	})
}

// recoveryLogger adapts logger.Logger to the gorilla/handlers RecoveryHandlerLogger.
type recoveryLogger struct {
	logger logger.Logger
}

func (l recoveryLogger) Println(args ...interface{}) {
	l.logger.Error(context.Background(), "recovered from panic", map[string]interface{}{
		"panic": fmt.Sprint(args...),
	})
}
