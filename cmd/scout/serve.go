package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/FranksOps/scout/internal/api"
	"github.com/FranksOps/scout/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the enrichment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		metricsSrv := metrics.Start(app.cfg.MetricsPort)
		server := api.New(app.cfg.ListenAddr, app.agg, app.svc, app.bulk, app.logger)

		errCh := make(chan error, 1)
		go func() { errCh <- server.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		app.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			app.logger.Warn("api shutdown", "error", err)
		}
		if err := metricsSrv.Stop(shutdownCtx); err != nil {
			app.logger.Warn("metrics shutdown", "error", err)
		}
		return nil
	},
}
