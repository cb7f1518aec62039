// Package create реализует HTTP-обработчик добавления истории путешествия.
//
// Владелец истории берётся из контекста, который заполнил JWTMiddleware.
package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

// Request - данные новой истории. VisitedDate - миллисекунды Unix строкой или числом.
type Request struct {
	Title           string             `json:"title" validate:"required"`
	Story           string             `json:"story" validate:"required"`
	VisitedLocation string             `json:"visitedLocation" validate:"required"`
	ImageURL        string             `json:"imageUrl"`
	VisitedDate     models.VisitedDate `json:"visitedDate" validate:"required" swaggertype:"string" example:"1700000000000"`
}

type Response struct {
	Error   bool          `json:"error"`
	Story   *models.Story `json:"story"`
	Message string        `json:"message"`
}

type Service interface {
	Create(ctx context.Context, owner string, in models.StoryInput) (*models.Story, error)
}

// Handler управляет HTTP-запросами на создание историй.
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
// @Summary Добавить историю
// @Tags Stories
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные истории"
// @Success 201 {object} Response
// @Failure 400 {object} response.ErrorResponse "Не заполнены поля или неверная дата"
// @Failure 401 {object} response.ErrorResponse
// @Router /add-travel-story [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.story.create"

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

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("All fields are required except image URL."))
		return
	}

	st, err := h.service.Create(r.Context(), owner, models.StoryInput{
		Title:           req.Title,
		Story:           req.Story,
		VisitedLocation: req.VisitedLocation,
		ImageURL:        req.ImageURL,
		VisitedDate:     req.VisitedDate,
	})
	if err != nil {
		var vErr *common.ValidationError
		if errors.As(err, &vErr) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(vErr.Message))
			return
		}
		log.Error("failed to create story", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("story created", slog.String("story_id", st.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{Story: st, Message: "Added Successfully"})
}
