package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"taxsim/internal/api"
	"taxsim/internal/api/handler/v1handler"
	"taxsim/internal/config"
	"taxsim/pkg/logger"
	"taxsim/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func setupServer(ctx context.Context, cfg *config.Config) (*http.Server, func(ctx context.Context) error, error) {
	mp, err := metrics.NewPrometheusMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, nil, err //nolint: wrapcheck
	}
	rec, err := metrics.NewRecorder(mp)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create metrics recorder: %w", err)
	}

	calc, err := newCalculator(cfg, rec)
	if err != nil {
		return nil, nil, err
	}

	opts := api.NewOptions(cfg)
	opts.ErrorLog = logger.Slog(ctx)
	server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
		Calculator: calc,
		Advisory:   newAdvisory(cfg, rec),
	}}, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create webserver: %w", err)
	}

	return server, mp.Shutdown, nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server, closeMetrics, err := setupServer(ctx, cfg)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed listener
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}
				if err := closeMetrics(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
				}

				return nil
			})

			return g.Wait() //nolint: wrapcheck
		},
	}

	return cmd
}
