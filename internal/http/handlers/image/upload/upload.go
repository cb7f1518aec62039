// Package upload принимает изображение истории как multipart-файл в поле image.
package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/imagestore"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
)

// Response содержит публичный адрес сохранённого изображения.
type Response struct {
	Error    bool   `json:"error"`
	ImageURL string `json:"imageUrl"`
}

type Saver interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
}

type Handler struct {
	log      *slog.Logger
	store    Saver
	baseURL  string
	maxBytes int64
}

// New создаёт обработчик. baseURL - внешний адрес сервиса без завершающего слэша.
func New(log *slog.Logger, store Saver, baseURL string, maxBytes int64) *Handler {
	return &Handler{
		log:      log,
		store:    store,
		baseURL:  baseURL,
		maxBytes: maxBytes,
	}
}

// ServeHTTP godoc
// @Summary Загрузить изображение
// @Tags Images
// @Accept  multipart/form-data
// @Produce  json
// @Param image formData file true "Файл изображения"
// @Success 201 {object} Response
// @Failure 400 {object} response.ErrorResponse "Файл не передан"
// @Failure 500 {object} response.ErrorResponse
// @Router /image-upload [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.image.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Image is too large"))
			return
		}
		log.Debug("no image in request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("No image uploaded"))
		return
	}
	defer file.Close()

	name := imagestore.NewFilename(header.Filename)
	if err := h.store.Save(r.Context(), name, file, header.Size, header.Header.Get("Content-Type")); err != nil {
		log.Error("failed to save image", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("image uploaded", slog.String("name", name))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{ImageURL: h.baseURL + "/uploads/" + name})
}
