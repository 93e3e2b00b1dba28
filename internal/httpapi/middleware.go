package httpapi

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"

	"github.com/carefacility/shiftgen/pkg/logger"
)

// loggingMiddleware logs method, path, status, and duration for every
// request, at warn level for 4xx and error level for 5xx.
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			fields := []interface{}{
				"method", r.Method, "path", r.URL.Path,
				"status", wrapped.status, "duration_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case wrapped.status >= 500:
				log.Error("request completed", fields...)
			case wrapped.status >= 400:
				log.Warn("request completed", fields...)
			default:
				log.Info("request completed", fields...)
			}
		})
	}
}

// recoveryMiddleware turns a handler panic into a 500 response instead
// of crashing the server.
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					// the full entry, stack included, goes to the log; the
					// client gets an Entry with the logged time, level and
					// component, a generic message, and no fields (so no
					// stack or raw panic value).
					logged := log.Error("panic recovered", "error", rec, "path", r.URL.Path, "stack", string(debug.Stack()))
					client := logger.Entry{Time: logged.Time, Level: logged.Level, Component: logged.Component, Message: "internal server error"}
					writeJSON(w, http.StatusInternalServerError, client)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
