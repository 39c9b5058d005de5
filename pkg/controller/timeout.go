package controller

import (
	"net/http"
	"sync/atomic"
	"time"
)

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// WithTimeout returns a middleware that bounds each request to d. A request
// that runs out of time is answered with 504 and a TIMEOUT JSON error, and its
// context is canceled. A non-positive d disables the bound.
func WithTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var inner atomic.Int32
			tracked := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(&statusTracker{ResponseWriter: w, status: &inner}, r)
			})

			http.TimeoutHandler(tracked, d, timeoutBody).
				ServeHTTP(&timeoutRewriter{ResponseWriter: w, inner: &inner}, r)
		})
	}
}

// statusTracker remembers the first status the wrapped handler wrote, so a 503
// it produced itself is not mistaken for a timeout.
type statusTracker struct {
	http.ResponseWriter

	status *atomic.Int32
}

func (t *statusTracker) WriteHeader(code int) {
	t.status.CompareAndSwap(0, int32(code)) //nolint: gosec
	t.ResponseWriter.WriteHeader(code)
}

func (t *statusTracker) Write(b []byte) (int, error) {
	t.status.CompareAndSwap(0, http.StatusOK)

	return t.ResponseWriter.Write(b) //nolint: wrapcheck
}

// timeoutRewriter turns the 503 http.TimeoutHandler sends on expiry into a
// JSON 504.
type timeoutRewriter struct {
	http.ResponseWriter

	inner *atomic.Int32
}

func (rw *timeoutRewriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && rw.inner.Load() != http.StatusServiceUnavailable {
		rw.Header().Set("Content-Type", "application/json")
		code = http.StatusGatewayTimeout
	}
	rw.ResponseWriter.WriteHeader(code)
}
