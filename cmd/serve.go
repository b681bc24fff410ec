package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"settleup/internal/api"
	"settleup/internal/api/handler/v1handler"
	"settleup/internal/config"
	"settleup/internal/ledger"
	"settleup/internal/worker"
	"settleup/pkg/cache"
	"settleup/pkg/cache/rediscache"
	"settleup/pkg/logger"
	"settleup/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getCache connects to Redis when an address is configured. Without one the
// ledger runs uncached.
func getCache(ctx context.Context, cfg *config.Config) (cache.SettlementCache, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis address is not set, settlement cache is disabled")

		return nil, func() {}
	}

	c, err := rediscache.New(ctx, rediscache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return c, func() {
		logger.Info(ctx, "closing redis client...")
		if err := c.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			settlementCache, closeCache := getCache(ctx, cfg)
			defer closeCache()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			settlementMetrics, err := metrics.NewSettlements(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create settlement metrics", zap.Error(err))
			}

			l := ledger.New(strg, settlementCache, settlementMetrics, ledger.NewOptions(cfg))

			// workers outlive the signal so Stop can drain them
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, l, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Ledger: l},
				Ping: strg.Pool.Ping,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
