// Package account содержит регистрацию, вход и получение текущего пользователя.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-journal/internal/lib/password"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

// UserRepository описывает контракт хранилища учётных записей.
type UserRepository interface {
	// CreateUser сохраняет пользователя; занятый email — common.ErrAlreadyExists.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail возвращает пользователя или common.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя или common.ErrNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service отвечает за регистрацию и вход пользователей.
type Service struct {
	log      *slog.Logger
	users    UserRepository
	jwtMaker jwt.Maker
	cache    Cache
	userTTL  time.Duration
	now      func() time.Time
}

// New создает новый экземпляр Service.
func New(log *slog.Logger, users UserRepository, jwtMaker jwt.Maker, cache Cache, userTTL time.Duration) *Service {
	return &Service{
		log:      log,
		users:    users,
		jwtMaker: jwtMaker,
		cache:    cache,
		userTTL:  userTTL,
		now:      time.Now,
	}
}

// Register создает пользователя с хэшированным паролем и сразу выпускает токен.
func (s *Service) Register(ctx context.Context, fullName, email, rawPassword string) (*models.AuthResult, error) {
	const op = "account.Register"
	if fullName == "" || email == "" || rawPassword == "" {
		return nil, common.NewValidationError("All fields are required")
	}
	if len(rawPassword) > password.MaxLength {
		return nil, common.NewValidationError("Password must not exceed 72 bytes")
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", op, common.ErrAlreadyExists)
	case !errors.Is(err, common.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashed,
		CreatedOn:    s.now().UTC(),
	}
	// уникальный индекс ловит гонку двух одновременных регистраций
	if err = s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.issue(op, &user)
}

// Login проверяет пароль пользователя и выпускает токен.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*models.AuthResult, error) {
	const op = "account.Login"
	if email == "" || rawPassword == "" {
		return nil, common.NewValidationError("Email and Password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !password.Verify(user.PasswordHash, rawPassword) {
		return nil, fmt.Errorf("%s: %w", op, common.ErrInvalidCredentials)
	}

	return s.issue(op, user)
}

func (s *Service) issue(op string, user *models.User) (*models.AuthResult, error) {
	token, err := s.jwtMaker.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.AuthResult{
		User:        user.Public(),
		AccessToken: token,
	}, nil
}

// GetCurrentUser возвращает пользователя по ID, сначала заглядывая в кеш.
// Хэш пароля в кеш не попадает.
func (s *Service) GetCurrentUser(ctx context.Context, id string) (*models.User, error) {
	const op = "account.GetCurrentUser"
	key := userCacheKey(id)

	var cached models.User
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read user from cache", slog.String("op", op), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = s.cache.Set(ctx, key, user, s.userTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("op", op), sl.Err(err))
	}
	return user, nil
}

func userCacheKey(id string) string {
	return "user:" + id
}
