package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	customjwt "github.com/magabrotheeeer/travel-journal/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-journal/internal/lib/password"
	"github.com/magabrotheeeer/travel-journal/internal/models"
	"github.com/magabrotheeeer/travel-journal/internal/services/account"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(repo *UserRepoMock, maker customjwt.Maker, cache *CacheMock) *account.Service {
	return account.New(newNoopLogger(), repo, maker, cache, time.Hour)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name       string
		fullName   string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantErr    error
	}{
		{
			name:     "successful registration",
			fullName: "Ann",
			email:    "ann@x.com",
			password: "pw123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(nil, common.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					return u.ID != "" && u.FullName == "Ann" && u.Email == "ann@x.com" &&
						u.PasswordHash != "pw123" && password.Verify(u.PasswordHash, "pw123")
				})).Return(nil).Once()
				j.On("GenerateToken", mock.AnythingOfType("string")).Return("token", nil).Once()
			},
		},
		{
			name:       "missing full name",
			email:      "ann@x.com",
			password:   "pw123",
			setupMocks: func(_ *UserRepoMock, _ *JwtMakerMock) {},
			wantErr:    common.ErrValidation,
		},
		{
			name:       "missing password",
			fullName:   "Ann",
			email:      "ann@x.com",
			setupMocks: func(_ *UserRepoMock, _ *JwtMakerMock) {},
			wantErr:    common.ErrValidation,
		},
		{
			name:       "password longer than bcrypt limit",
			fullName:   "Ann",
			email:      "ann@x.com",
			password:   strings.Repeat("p", 80),
			setupMocks: func(_ *UserRepoMock, _ *JwtMakerMock) {},
			wantErr:    common.ErrValidation,
		},
		{
			name:     "password at bcrypt limit",
			fullName: "Ann",
			email:    "ann@x.com",
			password: strings.Repeat("p", password.MaxLength),
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(nil, common.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
				j.On("GenerateToken", mock.AnythingOfType("string")).Return("token", nil).Once()
			},
		},
		{
			name:     "email already taken",
			fullName: "Ann",
			email:    "ann@x.com",
			password: "pw123",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "ann@x.com").
					Return(&models.User{ID: "u1", Email: "ann@x.com"}, nil).Once()
			},
			wantErr: common.ErrAlreadyExists,
		},
		{
			name:     "concurrent insert hits unique index",
			fullName: "Ann",
			email:    "ann@x.com",
			password: "pw123",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(nil, common.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.Anything).Return(common.ErrAlreadyExists).Once()
			},
			wantErr: common.ErrAlreadyExists,
		},
		{
			name:     "lookup failure",
			fullName: "Ann",
			email:    "ann@x.com",
			password: "pw123",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(nil, errors.New("db error")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := newService(repo, jwtMock, new(CacheMock))

			tt.setupMocks(repo, jwtMock)

			got, err := svc.Register(context.Background(), tt.fullName, tt.email, tt.password)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.name == "lookup failure":
				require.Error(t, err)
				assert.Contains(t, err.Error(), "db error")
				assert.NotErrorIs(t, err, common.ErrAlreadyExists)
			default:
				require.NoError(t, err)
				assert.Equal(t, "token", got.AccessToken)
				assert.Equal(t, models.PublicUser{FullName: "Ann", Email: "ann@x.com"}, got.User)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestService_Login(t *testing.T) {
	hashed, err := password.GetHash("correctpassword")
	require.NoError(t, err)
	stored := &models.User{ID: "u1", FullName: "Ann", Email: "ann@x.com", PasswordHash: hashed}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantErr    error
	}{
		{
			name:     "successful login",
			email:    "ann@x.com",
			password: "correctpassword",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(stored, nil).Once()
				j.On("GenerateToken", "u1").Return("token", nil).Once()
			},
		},
		{
			name:       "missing email",
			password:   "correctpassword",
			setupMocks: func(_ *UserRepoMock, _ *JwtMakerMock) {},
			wantErr:    common.ErrValidation,
		},
		{
			name:     "unknown user",
			email:    "nobody@x.com",
			password: "correctpassword",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "nobody@x.com").Return(nil, common.ErrNotFound).Once()
			},
			wantErr: common.ErrNotFound,
		},
		{
			name:     "wrong password",
			email:    "ann@x.com",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(stored, nil).Once()
			},
			wantErr: common.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := newService(repo, jwtMock, new(CacheMock))

			tt.setupMocks(repo, jwtMock)

			got, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token", got.AccessToken)
				assert.Equal(t, "Ann", got.User.FullName)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestService_RegisterThenLoginWithRealTokens(t *testing.T) {
	maker, err := customjwt.NewJWTMaker("secret", customjwt.DefaultTokenTTL)
	require.NoError(t, err)

	repo := new(UserRepoMock)
	var saved models.User
	repo.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(nil, common.ErrNotFound).Once()
	repo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(models.User)
	}).Return(nil).Once()

	svc := newService(repo, maker, new(CacheMock))
	res, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	claims, err := maker.ParseToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, claims.UserID)

	repo.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(&saved, nil).Once()
	res, err = svc.Login(context.Background(), "ann@x.com", "pw123")
	require.NoError(t, err)
	claims, err = maker.ParseToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, claims.UserID)
}

func TestService_GetCurrentUser(t *testing.T) {
	user := &models.User{ID: "u1", FullName: "Ann", Email: "ann@x.com"}

	t.Run("cache miss loads from repository", func(t *testing.T) {
		repo := new(UserRepoMock)
		cache := new(CacheMock)
		svc := newService(repo, new(JwtMakerMock), cache)

		cache.On("Get", mock.Anything, "user:u1", mock.Anything).Return(false, nil).Once()
		repo.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()
		cache.On("Set", mock.Anything, "user:u1", user, time.Hour).Return(nil).Once()

		got, err := svc.GetCurrentUser(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(UserRepoMock)
		cache := new(CacheMock)
		svc := newService(repo, new(JwtMakerMock), cache)

		cache.On("Get", mock.Anything, "user:u1", mock.Anything).Run(func(args mock.Arguments) {
			*(args.Get(2).(*models.User)) = *user
		}).Return(true, nil).Once()

		got, err := svc.GetCurrentUser(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", got.Email)
		repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		repo := new(UserRepoMock)
		cache := new(CacheMock)
		svc := newService(repo, new(JwtMakerMock), cache)

		cache.On("Get", mock.Anything, "user:u1", mock.Anything).Return(false, errors.New("redis down")).Once()
		repo.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()
		cache.On("Set", mock.Anything, "user:u1", user, time.Hour).Return(errors.New("redis down")).Once()

		got, err := svc.GetCurrentUser(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("user vanished", func(t *testing.T) {
		repo := new(UserRepoMock)
		cache := new(CacheMock)
		svc := newService(repo, new(JwtMakerMock), cache)

		cache.On("Get", mock.Anything, "user:u1", mock.Anything).Return(false, nil).Once()
		repo.On("GetUserByID", mock.Anything, "u1").Return(nil, common.ErrNotFound).Once()

		_, err := svc.GetCurrentUser(context.Background(), "u1")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
