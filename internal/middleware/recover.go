package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"aquarium-catalog/internal/platform/logger"
)

// Recover atrapa panics del handler, los loguea con el stack y responde 500.
// http.ErrAbortHandler se re-lanza: es la forma de net/http de cortar la respuesta.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				fields := map[string]any{
					"panic":  fmt.Sprint(rec),
					"method": r.Method,
					"path":   r.URL.Path,
					"stack":  string(debug.Stack()),
				}
				if id, ok := GetRequestID(r.Context()); ok {
					fields["request_id"] = id
				}
				log.Error("panic recovered", fields)

				http.Error(w, "internal error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
