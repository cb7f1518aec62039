package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	imagecleaner "github.com/magabrotheeeer/travel-journal/internal/app/image-cleaner"
	"github.com/magabrotheeeer/travel-journal/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting image-cleaner", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := imagecleaner.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize image-cleaner", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("image-cleaner stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("image-cleaner stopped gracefully")
}
