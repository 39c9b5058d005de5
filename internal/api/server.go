// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the tax simulator.
package api

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"taxsim/internal/api/handler/v1handler"
	"taxsim/internal/config"
	"taxsim/pkg/controller"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer authentication for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds handling of a single request; an expired request gets a 504 TIMEOUT error.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigin is the CORS origin.
	AllowedOrigin string
	// ErrorLog receives net/http server errors. Nil uses the standard logger.
	ErrorLog *slog.Logger
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigin:     cfg.HTTP.AllowedOrigin,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewHandler builds the root handler:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes behind optional bearer authentication
// - pprof endpoints for profiling
// wrapped with body limit, CORS, recovery and logging middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	if opts.MetricsPath != "" {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Tax Simulator",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1 := v1handler.New(deps.Deps)
	mux.Handle("/v1/", http.StripPrefix("/v1", secHandler.Middleware(v1, v1.Routes())))

	// pprof
	mux.Handle("/debug/pprof/", controller.DebugMux())

	handler := controller.WithBodyLimit(opts.MaxBodyBytes)(mux)
	handler = controller.WithCORS(opts.AllowedOrigin)(handler)
	handler = controller.WithRecover(handler)
	handler = controller.WithLogger(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided
// Options. The request timeout wraps the whole handler chain.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}
	handler = controller.WithTimeout(opts.RequestTimeout)(handler)

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
	if opts.ErrorLog != nil {
		srv.ErrorLog = slog.NewLogLogger(opts.ErrorLog.Handler(), slog.LevelError)
	}

	return srv, nil
}
