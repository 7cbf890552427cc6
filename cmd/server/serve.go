package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"helping-hands/volunteerhub/internal/api"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/routes"
	"helping-hands/volunteerhub/internal/workers"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logging.Info("volunteerhub starting up",
			"environment", cfg.AppEnv,
			"timestamp", time.Now().Format(time.RFC3339),
		)

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		deps, err := api.InitDependencies(ctx, cfg, database, metrics.NewMetricsRegistry())
		if err != nil {
			return fmt.Errorf("initialize dependencies: %w", err)
		}
		defer deps.Close()

		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           routes.NewRouter(deps),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		if deps.Services.RedisQueue != nil {
			workers.Run(gctx, g, deps.Services.RedisQueue, deps.Services.Mailer, deps.Metrics)
		}

		g.Go(func() error {
			logging.Info("Server starting", "addr", cfg.HTTPAddr, "environment", cfg.AppEnv)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logging.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}
