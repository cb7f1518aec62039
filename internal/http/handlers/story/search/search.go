// Package search ищет подстроку в историях текущего пользователя.
package search

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

type Response struct {
	Error   bool           `json:"error"`
	Stories []models.Story `json:"stories"`
}

type Service interface {
	Search(ctx context.Context, owner, query string) ([]models.Story, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск по историям
// @Description Регистронезависимый поиск подстроки в заголовке, тексте и месте.
// @Tags Stories
// @Produce  json
// @Security BearerAuth
// @Param query query string true "Подстрока"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Недопустимый query"
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Не передан query"
// @Failure 500 {object} response.ErrorResponse
// @Router /search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.story.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	owner, ok := middlewarectx.UserIDFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Invalid access token"))
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("query is required"))
		return
	}

	stories, err := h.service.Search(r.Context(), owner, query)
	if err != nil {
		var vErr *common.ValidationError
		if errors.As(err, &vErr) {
			log.Info("invalid search query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(vErr.Message))
			return
		}
		log.Error("search failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}
	if stories == nil {
		stories = []models.Story{}
	}

	render.JSON(w, r, Response{Stories: stories})
}
