package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pcd-jobs/internal/app"
	"pcd-jobs/internal/config"
	"pcd-jobs/internal/database/seeder"
	"pcd-jobs/internal/logging"
)

// seed registers the demo company, job and PCD users against the configured
// database and prints one line per record.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Seeding runs once below, not during bootstrap.
	cfg.Database.RunSeeders = false
	logger := logging.New(os.Stderr, cfg.App.LogLevel, cfg.App.Environment)

	a, cleanup, err := app.Bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to bootstrap app", "err", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	demo := seeder.Demo{Accounts: a.Services.Auth, Jobs: a.Services.Job, Logger: logger}
	rep, err := demo.Seed(ctx)
	for _, it := range rep.Items {
		status := "ok"
		if it.Err != nil {
			status = it.Err.Error()
		}
		fmt.Printf("%-8s %-28s %s\n", it.Kind, it.Email, status)
	}
	if err != nil {
		logger.Error(ctx, "seed failed", "err", err)
		_ = cleanup()
		os.Exit(1)
	}
}
