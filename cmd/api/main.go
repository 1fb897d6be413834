package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bookcatalog/internal/app"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("cannot load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store, closeStore, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	log.Info("store ready", "driver", cfg.Store.Driver)
	return app.Serve(ctx, cfg.Server, app.NewHandler(ctx, cfg.Server, store, log), log)
}
