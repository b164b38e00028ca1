package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcd-jobs/internal/app"
	"pcd-jobs/internal/config"
	"pcd-jobs/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "info", config.EnvProduction).Error(ctx, "failed to load config", "err", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.App.LogLevel, cfg.App.Environment)

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to bootstrap app", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error(ctx, "cleanup error", "err", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Error(ctx, "invalid HTTP port", "err", err)
		return
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	logger.Info(ctx, "server listening", "addr", addr, "env", cfg.App.Environment, "driver", cfg.Database.Driver)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error(ctx, "server error", "err", err)
		}
	case sig := <-sigCh:
		logger.Info(ctx, "shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error(ctx, "shutdown error", "err", err)
		}
	}
}
