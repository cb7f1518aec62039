// Package update реализует HTTP-обработчик редактирования истории.
//
// Все поля обязательны, включая imageUrl. История другого пользователя
// неотличима от несуществующей и даёт 404.
package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

// Request - новые значения полей истории. JSON-ключи сравниваются без учёта
// регистра, поэтому visitedlocation тоже принимается.
type Request struct {
	Title           string             `json:"title" validate:"required"`
	Story           string             `json:"story" validate:"required"`
	VisitedLocation string             `json:"visitedLocation" validate:"required"`
	ImageURL        string             `json:"imageUrl" validate:"required"`
	VisitedDate     models.VisitedDate `json:"visitedDate" validate:"required" swaggertype:"string" example:"1700000000000"`
}

type Response struct {
	Error   bool          `json:"error"`
	Story   *models.Story `json:"story"`
	Message string        `json:"message"`
}

type Service interface {
	Edit(ctx context.Context, owner, id string, in models.StoryInput) (*models.Story, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Редактировать историю
// @Tags Stories
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID истории"
// @Param request body Request true "Новые значения"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /edit-story/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.story.update"

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
	id := chi.URLParam(r, "id")

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("All fields are required"))
		return
	}

	st, err := h.service.Edit(r.Context(), owner, id, models.StoryInput{
		Title:           req.Title,
		Story:           req.Story,
		VisitedLocation: req.VisitedLocation,
		ImageURL:        req.ImageURL,
		VisitedDate:     req.VisitedDate,
	})
	if err != nil {
		var vErr *common.ValidationError
		switch {
		case errors.As(err, &vErr):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(vErr.Message))
		case errors.Is(err, common.ErrNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Travel story not found"))
		default:
			log.Error("failed to update story", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
		}
		return
	}

	log.Info("story updated", slog.String("story_id", id))
	render.JSON(w, r, Response{Story: st, Message: "Update Successful"})
}
