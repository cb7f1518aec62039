// Package remove удаляет загруженное изображение по его адресу.
//
// Отсутствующий файл не считается ошибкой HTTP: ответ 200 с error:true.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/imagestore"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
)

const deletedMessage = "Image deleted successfully"

type Remover interface {
	Remove(ctx context.Context, name string) error
}

type Handler struct {
	log   *slog.Logger
	store Remover
}

func New(log *slog.Logger, store Remover) *Handler {
	return &Handler{
		log:   log,
		store: store,
	}
}

// ServeHTTP godoc
// @Summary Удалить изображение
// @Tags Images
// @Produce  json
// @Param imageUrl query string true "Адрес изображения"
// @Success 200 {object} response.MessageResponse "error=true, если файла не было"
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /delete-image [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.image.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	imageURL := r.URL.Query().Get("imageUrl")
	if imageURL == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("imageUrl parameter is required"))
		return
	}

	name, err := imagestore.FilenameFromURL(imageURL)
	if err == nil {
		err = h.store.Remove(r.Context(), name)
	}
	switch {
	case err == nil:
		log.Info("image deleted", slog.String("name", name))
		render.JSON(w, r, response.OK(deletedMessage))
	case errors.Is(err, common.ErrNotFound), errors.Is(err, imagestore.ErrInvalidName):
		render.JSON(w, r, response.Error(deletedMessage))
	default:
		log.Error("failed to delete image", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
	}
}
