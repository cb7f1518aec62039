package traveljournal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/travel-journal/internal/cache"
	"github.com/magabrotheeeer/travel-journal/internal/config"
	"github.com/magabrotheeeer/travel-journal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-journal/internal/imagestore"
	"github.com/magabrotheeeer/travel-journal/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-journal/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/migrations"
	"github.com/magabrotheeeer/travel-journal/internal/services/account"
	"github.com/magabrotheeeer/travel-journal/internal/services/cleanup"
	"github.com/magabrotheeeer/travel-journal/internal/services/story"
	"github.com/magabrotheeeer/travel-journal/internal/storage"
	"github.com/magabrotheeeer/travel-journal/internal/storage/mongostore"
)

// repository - хранилище пользователей и историй, общее для postgres и mongo.
type repository interface {
	account.UserRepository
	story.Repository
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "traveljournal.New"
	a := &App{logger: logger}

	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.closers = append(a.closers, repo.Close)

	var userCache account.Cache = cache.Noop{}
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		userCache = cacheRedis
		a.closers = append(a.closers, cacheRedis.Close)
	}

	images, err := openImages(ctx, cfg)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cleaner, err := a.startCleaner(cfg, images)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	jwtMaker, err := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accountService := account.New(logger, repo, jwtMaker, userCache, cfg.UserTTL)
	storyService := story.New(logger, repo, cleaner, cfg.PlaceholderImageURL())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	middlewarectx.RegisterMetrics(reg)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, Deps{
		Accounts: accountService,
		Stories:  storyService,
		Images:   images,
		Tokens:   jwtMaker,
		Store:    repo,
		Metrics:  reg,
	})

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return a, nil
}

func openRepository(ctx context.Context, cfg *config.Config) (repository, error) {
	if cfg.Driver == config.DriverMongo {
		db, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := storage.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func openImages(ctx context.Context, cfg *config.Config) (imagestore.Store, error) {
	if cfg.Backend == config.ImagesMinio {
		return imagestore.NewMinio(ctx, cfg.Minio)
	}
	return imagestore.NewLocal(cfg.UploadsDir)
}

// startCleaner выбирает способ фоновой очистки изображений: RabbitMQ, если
// задан адрес брокера, иначе очередь внутри процесса.
func (a *App) startCleaner(cfg *config.Config, images imagestore.Store) (story.ImageCleaner, error) {
	if cfg.RabbitMQ.URL == "" {
		q := cleanup.NewQueue(a.logger, cleanup.NewHandler(a.logger, images), cfg.CleanupQueueSize)
		q.Start(cfg.CleanupWorkers)
		a.closers = append(a.closers, func() error {
			q.Stop()
			return nil
		})
		return q, nil
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.ImagesExchange, rabbitmq.GetImageQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}
	a.closers = append(a.closers, ch.Close, conn.Close)
	return cleanup.NewPublisher(ch), nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close освобождает ресурсы в порядке, обратном открытию.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to release resource", sl.Err(err))
		}
	}
	a.closers = nil
}
