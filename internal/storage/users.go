package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/travel-journal/internal/models"
)

// CreateUser сохраняет нового пользователя. Занятый email возвращает common.ErrAlreadyExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO users (id, full_name, email, password_hash, created_on)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := s.DB.ExecContext(ctx, query,
		user.ID, user.FullName, user.Email, user.PasswordHash, user.CreatedOn)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// GetUserByEmail ищет пользователя по точному совпадению email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	return s.getUser(ctx, op, `SELECT id, full_name, email, password_hash, created_on
		FROM users WHERE email = $1`, email)
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUserByID"
	return s.getUser(ctx, op, `SELECT id, full_name, email, password_hash, created_on
		FROM users WHERE id = $1`, id)
}

func (s *Storage) getUser(ctx context.Context, op, query string, arg string) (*models.User, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	var u models.User
	err := s.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &u, nil
}
