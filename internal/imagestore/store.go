// Package imagestore хранит загруженные изображения историй.
package imagestore

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidName имя файла пустое или содержит путь.
var ErrInvalidName = errors.New("invalid image name")

// Store хранилище файлов изображений по имени.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
	Remove(ctx context.Context, name string) error
}

// NewFilename генерирует уникальное имя, сохраняя расширение исходного файла.
func NewFilename(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

// FilenameFromURL извлекает имя файла из адреса изображения.
func FilenameFromURL(imageURL string) (string, error) {
	p := imageURL
	if u, err := url.Parse(imageURL); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(p)
	if err := checkName(name); err != nil {
		return "", err
	}
	return name, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || name == "/" || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}

func contentTypeByName(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
