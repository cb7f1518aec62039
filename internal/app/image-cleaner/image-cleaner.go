// Package imagecleaner собирает потребителя очереди удаления изображений.
package imagecleaner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/travel-journal/internal/config"
	"github.com/magabrotheeeer/travel-journal/internal/imagestore"
	"github.com/magabrotheeeer/travel-journal/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/travel-journal/internal/services/cleanup"
)

type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	handler *cleanup.Handler
	logger  *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "imagecleaner.New"
	if cfg.RabbitMQ.URL == "" {
		return nil, fmt.Errorf("%s: rabbitmq url is not set", op)
	}

	var (
		images imagestore.Store
		err    error
	)
	if cfg.Backend == config.ImagesMinio {
		images, err = imagestore.NewMinio(ctx, cfg.Minio)
	} else {
		images, err = imagestore.NewLocal(cfg.UploadsDir)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.ImagesExchange, rabbitmq.GetImageQueues())
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &App{
		conn:    conn,
		ch:      ch,
		handler: cleanup.NewHandler(logger, images),
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumeMessages(ctx, a.ch, rabbitmq.ImageCleanupQueue, a.handler.Handle, a.logger)
	if err != nil {
		a.logger.Error("failed to start images.cleanup consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("image cleaner shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
