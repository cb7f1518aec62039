package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/magabrotheeeer/travel-journal/internal/common"
)

// Local хранит изображения в каталоге на диске.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	const op = "imagestore.NewLocal"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Save(ctx context.Context, name string, r io.Reader, _ int64, _ string) error {
	const op = "imagestore.Local.Save"
	if err := checkName(name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(l.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(l.dir, name)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (l *Local) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	const op = "imagestore.Local.Open"
	if err := checkName(name); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	f, err := os.Open(filepath.Join(l.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return f, contentTypeByName(name), nil
}

func (l *Local) Remove(_ context.Context, name string) error {
	const op = "imagestore.Local.Remove"
	if err := checkName(name); err != nil {
		return fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	err := os.Remove(filepath.Join(l.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
