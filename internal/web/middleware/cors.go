package middleware

import (
	"net/http"
	"os"
	"strings"
)

// parseAllowedOrigins reads CORS_ALLOWED_ORIGINS and returns the set of
// allowed origins. An empty variable allows any origin, which suits an
// unauthenticated comparison API.
func parseAllowedOrigins() map[string]struct{} {
	env := os.Getenv("CORS_ALLOWED_ORIGINS")
	if env == "" {
		return nil
	}
	origins := make(map[string]struct{})
	for _, o := range strings.Split(env, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = struct{}{}
		}
	}
	return origins
}

// CORS returns middleware that handles CORS headers. Origins come from
// the CORS_ALLOWED_ORIGINS environment variable (comma-separated); when
// unset, all origins are allowed.
func CORS() func(http.Handler) http.Handler {
	allowed := parseAllowedOrigins()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if allowed == nil {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else if _, ok := allowed[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
				}
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")

			// Handle preflight requests.
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
