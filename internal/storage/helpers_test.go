package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/travel-journal/internal/migrations"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

// setupTestStorage поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	migrationsPath, err := filepath.Abs("../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	return storage
}

// TestDataFactory создает тестовые данные через методы хранилища.
type TestDataFactory struct {
	storage *Storage
}

func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

func (f *TestDataFactory) CreateUser(t *testing.T, email string) models.User {
	t.Helper()
	u := models.User{
		ID:           uuid.NewString(),
		FullName:     "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
		CreatedOn:    time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, f.storage.CreateUser(context.Background(), u))
	return u
}

func (f *TestDataFactory) CreateStory(t *testing.T, owner, title string, createdOn time.Time) models.Story {
	t.Helper()
	st := models.Story{
		ID:              uuid.NewString(),
		Title:           title,
		Story:           "Story about " + title,
		VisitedLocation: title + " city",
		UserID:          owner,
		VisitedDate:     time.UnixMilli(1700000000000).UTC(),
		CreatedOn:       createdOn.UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, f.storage.CreateStory(context.Background(), st))
	return st
}
