// Package serve отдаёт загруженные изображения из хранилища по /uploads/*.
package serve

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
)

type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

type Handler struct {
	log   *slog.Logger
	store Opener
}

func New(log *slog.Logger, store Opener) *Handler {
	return &Handler{
		log:   log,
		store: store,
	}
}

// ServeHTTP godoc
// @Summary Получить изображение
// @Tags Images
// @Produce  octet-stream
// @Param name path string true "Имя файла"
// @Success 200 {file} file
// @Failure 404 {string} string
// @Router /uploads/{name} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.image.serve"

	name := chi.URLParam(r, "*")
	rc, contentType, err := h.store.Open(r.Context(), name)
	if errors.Is(err, common.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to open image", sl.Err(err),
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := io.Copy(w, rc); err != nil {
		h.log.Debug("image stream interrupted", sl.Err(err), slog.String("op", op))
	}
}
