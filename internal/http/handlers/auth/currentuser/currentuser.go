// Package currentuser отдаёт профиль пользователя, которому принадлежит токен.
package currentuser

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

// Response содержит пользователя без хэша пароля.
type Response struct {
	Error   bool         `json:"error"`
	User    *models.User `json:"user"`
	Message string       `json:"message"`
}

type Service interface {
	GetCurrentUser(ctx context.Context, id string) (*models.User, error)
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
// @Summary Текущий пользователь
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен; пустое тело, если пользователь удалён"
// @Router /get-user [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.currentuser"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := h.service.GetCurrentUser(r.Context(), userID)
	if errors.Is(err, common.ErrNotFound) {
		log.Info("token owner no longer exists", slog.String("user_id", userID))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Error("failed to get user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	render.JSON(w, r, Response{User: user, Message: ""})
}
