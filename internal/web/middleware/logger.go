// Package middleware holds the HTTP middleware stack of the service.
package middleware

import (
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestLogger returns middleware that attaches a request-scoped
// zerolog logger to the context and logs every request with its status
// and duration. A request ID is taken from the X-Request-ID header or
// generated when absent.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", rid)

			logger := log.With().
				Str("request_id", rid).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Logger()

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context())))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			event := logger.Info()
			if status >= 500 {
				event = logger.Error()
			}
			event.
				Int("status", status).
				Dur("duration", time.Since(start)).
				Msg("http request served")
		})
	}
}
