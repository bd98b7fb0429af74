package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"aquarium-catalog/internal/platform/logger"
)

// RequestLogger loguea una línea por request: método, path, status y latencia.
// /health va a debug para no ensuciar el log.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if id, ok := GetRequestID(r.Context()); ok {
				fields["request_id"] = id
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error("http request", fields)
			case r.URL.Path == "/health":
				log.Debug("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}
