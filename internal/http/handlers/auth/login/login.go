// Package login реализует HTTP-обработчик входа по email и паролю.
package login

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
	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	Error       bool              `json:"error"`
	User        models.PublicUser `json:"user"`
	AccessToken string            `json:"accessToken"`
	Message     string            `json:"message"`
}

type Service interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
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
// @Summary Вход пользователя
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Email и пароль"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Не заполнены поля, пользователь не найден или неверный пароль"
// @Failure 500 {object} response.ErrorResponse
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Email and Password are required"))
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *common.ValidationError
		switch {
		case errors.As(err, &vErr):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(vErr.Message))
		case errors.Is(err, common.ErrNotFound):
			log.Info("login for unknown email")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("User not found"))
		case errors.Is(err, common.ErrInvalidCredentials):
			log.Info("invalid credentials")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid Credentials"))
		default:
			log.Error("login failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
		}
		return
	}

	render.JSON(w, r, Response{
		User:        res.User,
		AccessToken: res.AccessToken,
		Message:     "Login Successful",
	})
}
