package mongostore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo integration test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForLog("Waiting for connections").
			WithStartupTimeout(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	storage, err := New(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "travel_journal_test")
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })
	return storage
}

func newUser(email string) models.User {
	return models.User{
		ID:           uuid.NewString(),
		FullName:     "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
		CreatedOn:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func newStory(owner, title string, createdOn time.Time) models.Story {
	return models.Story{
		ID:              uuid.NewString(),
		Title:           title,
		Story:           "Story about " + title,
		VisitedLocation: title + " city",
		UserID:          owner,
		VisitedDate:     time.UnixMilli(1700000000000).UTC(),
		CreatedOn:       createdOn,
	}
}

func TestStorage_Integration(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	ann := newUser("ann@x.com")
	bob := newUser("bob@x.com")
	require.NoError(t, storage.CreateUser(ctx, ann))
	require.NoError(t, storage.CreateUser(ctx, bob))

	t.Run("users", func(t *testing.T) {
		got, err := storage.GetUserByEmail(ctx, "ann@x.com")
		require.NoError(t, err)
		assert.Equal(t, ann.ID, got.ID)
		assert.Equal(t, ann.PasswordHash, got.PasswordHash)
		assert.True(t, ann.CreatedOn.Equal(got.CreatedOn))

		got, err = storage.GetUserByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@x.com", got.Email)

		_, err = storage.GetUserByID(ctx, "missing")
		assert.ErrorIs(t, err, common.ErrNotFound)

		err = storage.CreateUser(ctx, newUser("ann@x.com"))
		assert.ErrorIs(t, err, common.ErrAlreadyExists)
	})

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	paris := newStory(ann.ID, "Paris", base)
	rome := newStory(ann.ID, "Rome", base.Add(time.Hour))
	other := newStory(bob.ID, "Paris (bob)", base)
	for _, st := range []models.Story{paris, rome, other} {
		require.NoError(t, storage.CreateStory(ctx, st))
	}

	t.Run("ownership", func(t *testing.T) {
		got, err := storage.GetStoryByOwner(ctx, ann.ID, paris.ID)
		require.NoError(t, err)
		assert.Equal(t, paris.Title, got.Title)
		assert.Equal(t, ann.ID, got.UserID)
		assert.True(t, paris.VisitedDate.Equal(got.VisitedDate))

		_, err = storage.GetStoryByOwner(ctx, bob.ID, paris.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)

		_, err = storage.DeleteStory(ctx, bob.ID, paris.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("favourites first", func(t *testing.T) {
		list, err := storage.ListStoriesByOwner(ctx, ann.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, rome.ID, list[0].ID)

		_, err = storage.SetFavourite(ctx, ann.ID, paris.ID, true)
		require.NoError(t, err)

		list, err = storage.ListStoriesByOwner(ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, paris.ID, list[0].ID)
		assert.True(t, list[0].IsFavourite)
	})

	t.Run("search", func(t *testing.T) {
		list, err := storage.SearchStories(ctx, ann.ID, "PARIS")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, paris.ID, list[0].ID)

		list, err = storage.SearchStories(ctx, ann.ID, "(bob)")
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = storage.SearchStories(ctx, ann.ID, ".*")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("update", func(t *testing.T) {
		upd := rome
		upd.Title = "Roma"
		got, err := storage.UpdateStory(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, "Roma", got.Title)
		assert.Equal(t, ann.ID, got.UserID)

		upd.UserID = bob.ID
		_, err = storage.UpdateStory(ctx, upd)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := storage.DeleteStory(ctx, ann.ID, rome.ID)
		require.NoError(t, err)
		assert.Equal(t, rome.ID, deleted.ID)

		_, err = storage.GetStoryByOwner(ctx, ann.ID, rome.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	assert.NoError(t, storage.Ping(ctx))
}
