package controller

import "net/http"

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, " +
		"X-Request-Id, X-Advisor-Key, accept, origin, Cache-Control"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// WithCORS returns a middleware that sets CORS headers for allowedOrigin on
// every response and short-circuits OPTIONS preflight requests with 204 No
// Content. An empty allowedOrigin means "*". Credentials are only allowed for
// an explicit origin, since browsers reject them alongside a wildcard.
func WithCORS(allowedOrigin string) func(http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
