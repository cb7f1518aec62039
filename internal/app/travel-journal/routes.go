// Package traveljournal собирает HTTP-приложение журнала путешествий.
package traveljournal

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/travel-journal/internal/config"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/auth/currentuser"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/health"
	imageremove "github.com/magabrotheeeer/travel-journal/internal/http/handlers/image/remove"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/image/serve"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/image/upload"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/story/create"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/story/favourite"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/story/list"
	storyremove "github.com/magabrotheeeer/travel-journal/internal/http/handlers/story/remove"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/story/search"
	"github.com/magabrotheeeer/travel-journal/internal/http/handlers/story/update"
	"github.com/magabrotheeeer/travel-journal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-journal/internal/imagestore"

	_ "github.com/magabrotheeeer/travel-journal/docs"
)

// AccountService - операции с учётными записями, нужные обработчикам.
type AccountService interface {
	register.Service
	login.Service
	currentuser.Service
}

// StoryService - операции с историями, нужные обработчикам.
type StoryService interface {
	create.Service
	list.Service
	update.Service
	storyremove.Service
	search.Service
	favourite.Service
}

// Deps зависимости маршрутов.
type Deps struct {
	Accounts AccountService
	Stories  StoryService
	Images   imagestore.Store
	Tokens   middlewarectx.TokenParser
	Store    health.Pinger
	Metrics  prometheus.Gatherer
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, d Deps) {
	// Глобальные middleware
	r.Use(
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.Metrics,
	)

	// Открытые конечные точки
	r.Post("/create-account", register.New(logger, d.Accounts).ServeHTTP)
	r.Post("/login", login.New(logger, d.Accounts).ServeHTTP)
	r.Post("/image-upload", upload.New(logger, d.Images, cfg.PublicBaseURL, cfg.MaxUploadBytes).ServeHTTP)
	r.Delete("/delete-image", imageremove.New(logger, d.Images).ServeHTTP)
	r.Get("/uploads/*", serve.New(logger, d.Images).ServeHTTP)
	r.Get("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir))).ServeHTTP)
	r.Get("/health", health.New(logger, d.Store).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(d.Tokens, logger))
		r.Get("/get-user", currentuser.New(logger, d.Accounts).ServeHTTP)
		r.Post("/add-travel-story", create.New(logger, d.Stories).ServeHTTP)
		r.Get("/get-all-stories", list.New(logger, d.Stories).ServeHTTP)
		r.Put("/edit-story/{id}", update.New(logger, d.Stories).ServeHTTP)
		r.Delete("/delete-story/{id}", storyremove.New(logger, d.Stories).ServeHTTP)
		r.Get("/search", search.New(logger, d.Stories).ServeHTTP)
		r.Put("/update-is-favourite/{id}", favourite.New(logger, d.Stories).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
