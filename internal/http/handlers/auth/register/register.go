// Package register реализует HTTP-обработчик регистрации пользователя.
package register

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

// Request - входные данные для регистрации.
type Request struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response - пользователь и токен сессии.
type Response struct {
	Error       bool              `json:"error"`
	User        models.PublicUser `json:"user"`
	AccessToken string            `json:"accessToken"`
	Message     string            `json:"message"`
}

type Service interface {
	Register(ctx context.Context, fullName, email, password string) (*models.AuthResult, error)
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
// @Summary Регистрация пользователя
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные пользователя"
// @Success 201 {object} Response
// @Failure 400 {object} response.ErrorResponse "Не заполнены поля или пользователь уже существует"
// @Failure 500 {object} response.ErrorResponse
// @Router /create-account [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("All fields are required"))
		return
	}

	res, err := h.service.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		var vErr *common.ValidationError
		switch {
		case errors.As(err, &vErr):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(vErr.Message))
		case errors.Is(err, common.ErrAlreadyExists):
			log.Info("email already registered")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("User already exists"))
		default:
			log.Error("registration failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
		}
		return
	}

	log.Info("user registered")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		User:        res.User,
		AccessToken: res.AccessToken,
		Message:     "Registration Successful",
	})
}
