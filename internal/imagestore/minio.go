package imagestore

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/config"
)

// Minio хранит изображения в бакете объектного хранилища.
type Minio struct {
	client *minio.Client
	bucket string
}

// NewMinio подключается к хранилищу и создаёт бакет, если его нет.
func NewMinio(ctx context.Context, cfg config.Minio) (*Minio, error) {
	const op = "imagestore.NewMinio"
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: bucket check: %w", op, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%s: make bucket: %w", op, err)
		}
	}
	return &Minio{client: client, bucket: cfg.Bucket}, nil
}

func (m *Minio) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	const op = "imagestore.Minio.Save"
	if err := checkName(name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if contentType == "" {
		contentType = contentTypeByName(name)
	}
	_, err := m.client.PutObject(ctx, m.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (m *Minio) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	const op = "imagestore.Minio.Open"
	if err := checkName(name); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, mapMinioErr(err))
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, "", fmt.Errorf("%s: %w", op, mapMinioErr(err))
	}
	return obj, info.ContentType, nil
}

// Remove удаляет объект. RemoveObject не сообщает об отсутствии ключа,
// поэтому наличие проверяется отдельно.
func (m *Minio) Remove(ctx context.Context, name string) error {
	const op = "imagestore.Minio.Remove"
	if err := checkName(name); err != nil {
		return fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	if _, err := m.client.StatObject(ctx, m.bucket, name, minio.StatObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, mapMinioErr(err))
	}
	if err := m.client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func mapMinioErr(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return common.ErrNotFound
	}
	return err
}
