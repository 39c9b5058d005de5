package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taxsim/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithTimeout_Expired(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(20*time.Millisecond)(next).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusGatewayTimeout, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.JSONEq(t, `{"code":"TIMEOUT","message":"request timed out"}`, string(body))
}

func TestWithTimeout_PassesThrough(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusServiceUnavailable} {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-Test", "yes")
			w.WriteHeader(code)
			_, _ = w.Write([]byte("ok"))
		})

		rec := httptest.NewRecorder()
		controller.WithTimeout(time.Second)(next).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		res := rec.Result()
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, code, res.StatusCode)
		require.Equal(t, "yes", res.Header.Get("X-Test"))
		require.Equal(t, "ok", string(body))
	}
}

func TestWithTimeout_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		require.False(t, ok)
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(0)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
}
