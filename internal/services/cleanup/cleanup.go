// Package cleanup удаляет изображения удалённых историй в фоне.
//
// Удаление записи истории — источник истины; удаление файла выполняется после
// ответа клиенту и его ошибки только логируются. Задание передаётся либо во
// внутреннюю очередь процесса (Queue), либо в RabbitMQ (Publisher), откуда его
// забирает cmd/image-cleaner с тем же Handler.
package cleanup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/imagestore"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
)

// Message — задание на удаление изображения.
type Message struct {
	ImageURL string `json:"image_url"`
}

// Remover удаляет файл изображения по имени.
type Remover interface {
	Remove(ctx context.Context, name string) error
}

// Handler удаляет изображение, на которое указывает задание.
type Handler struct {
	log   *slog.Logger
	store Remover
}

func NewHandler(log *slog.Logger, store Remover) *Handler {
	return &Handler{log: log, store: store}
}

// Handle обрабатывает тело сообщения из очереди. Ошибка означает, что
// сообщение стоит повторить; битые сообщения и отсутствующие файлы не повторяются.
func (h *Handler) Handle(body []byte) error {
	const op = "cleanup.Handle"
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		h.log.Error("failed to unmarshal message body", slog.String("op", op), sl.Err(err))
		return nil
	}
	return h.Remove(context.Background(), msg.ImageURL)
}

// Remove удаляет изображение по его URL.
func (h *Handler) Remove(ctx context.Context, imageURL string) error {
	const op = "cleanup.Remove"
	log := h.log.With(slog.String("op", op), slog.String("image_url", imageURL))

	name, err := imagestore.FilenameFromURL(imageURL)
	if err != nil {
		log.Warn("skip cleanup of invalid image url", sl.Err(err))
		return nil
	}
	err = h.store.Remove(ctx, name)
	switch {
	case err == nil:
		log.Info("image removed")
		return nil
	case errors.Is(err, common.ErrNotFound):
		log.Info("image already absent")
		return nil
	default:
		log.Error("failed to remove image", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
}
