// Package favourite меняет флаг избранного у истории.
package favourite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

// Request - новое значение флага. Отсутствие поля отличается от false.
type Request struct {
	IsFavourite *bool `json:"isFavourite"`
}

type Response struct {
	Error   bool          `json:"error"`
	Story   *models.Story `json:"story"`
	Message string        `json:"message"`
}

type Service interface {
	SetFavourite(ctx context.Context, owner, id string, isFavourite bool) (*models.Story, error)
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
// @Summary Отметить историю избранной
// @Tags Stories
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID истории"
// @Param request body Request true "Новое значение флага"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /update-is-favourite/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.story.favourite"

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
	if req.IsFavourite == nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("isFavourite is required"))
		return
	}

	st, err := h.service.SetFavourite(r.Context(), owner, id, *req.IsFavourite)
	if errors.Is(err, common.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Travel story not found"))
		return
	}
	if err != nil {
		log.Error("failed to update favourite flag", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	render.JSON(w, r, Response{Story: st, Message: "Update Successful"})
}
