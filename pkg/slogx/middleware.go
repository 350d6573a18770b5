package slogx

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/morjahome/dashboard/pkg/idx"
)

// HTTPMiddleware logs requests and attaches a contextual logger into request context.
// Completed requests are logged at INFO, 4xx at WARN and 5xx at ERROR.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			// Generate a request ID if not provided via X-Request-ID header
			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}
			rw.Header().Set("X-Request-ID", reqID)

			// Create contextual logger
			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			notes := &annotations{}
			ctx := WithContext(r.Context(), logger)
			ctx = context.WithValue(ctx, annotationsKey{}, notes)
			r = r.WithContext(ctx)

			next.ServeHTTP(rw, r)

			attrs := append([]any{
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"user_agent", r.UserAgent(),
			}, notes.list()...)

			logger.Log(ctx, levelForStatus(rw.status), "http_request", attrs...)
		})
	}
}

// Annotate adds attributes to the request's final access log line. Handlers
// deeper in the chain use it to record who the caller turned out to be.
func Annotate(ctx context.Context, attrs ...any) {
	if n, ok := ctx.Value(annotationsKey{}).(*annotations); ok {
		n.add(attrs...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

type annotationsKey struct{}

type annotations struct {
	mu    sync.Mutex
	attrs []any
}

func (a *annotations) add(attrs ...any) {
	a.mu.Lock()
	a.attrs = append(a.attrs, attrs...)
	a.mu.Unlock()
}

func (a *annotations) list() []any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]any(nil), a.attrs...)
}

type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }
