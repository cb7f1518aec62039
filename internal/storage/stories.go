package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/travel-journal/internal/models"
)

const storyColumns = `id, title, story, visited_location, is_favourite, user_id, image_url, visited_date, created_on`

// избранные первыми, внутри группы новые первыми
const storyOrder = ` ORDER BY is_favourite DESC, created_on DESC`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStory(row rowScanner) (*models.Story, error) {
	var st models.Story
	err := row.Scan(&st.ID, &st.Title, &st.Story, &st.VisitedLocation, &st.IsFavourite,
		&st.UserID, &st.ImageURL, &st.VisitedDate, &st.CreatedOn)
	if err != nil {
		return nil, err
	}
	st.VisitedDate = st.VisitedDate.UTC()
	st.CreatedOn = st.CreatedOn.UTC()
	return &st, nil
}

// CreateStory вставляет историю. Владелец берётся из story.UserID.
func (s *Storage) CreateStory(ctx context.Context, story models.Story) error {
	const op = "storage.CreateStory"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO travel_stories (` + storyColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.DB.ExecContext(ctx, query,
		story.ID, story.Title, story.Story, story.VisitedLocation, story.IsFavourite,
		story.UserID, story.ImageURL, story.VisitedDate, story.CreatedOn)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// ListStoriesByOwner возвращает все истории владельца, избранные первыми.
func (s *Storage) ListStoriesByOwner(ctx context.Context, owner string) ([]models.Story, error) {
	const op = "storage.ListStoriesByOwner"
	query := `SELECT ` + storyColumns + ` FROM travel_stories WHERE user_id = $1` + storyOrder
	return s.queryStories(ctx, op, query, owner)
}

// SearchStories ищет подстроку без учёта регистра в заголовке, тексте и месте.
func (s *Storage) SearchStories(ctx context.Context, owner, q string) ([]models.Story, error) {
	const op = "storage.SearchStories"
	query := `SELECT ` + storyColumns + ` FROM travel_stories
		WHERE user_id = $1 AND (
			position(lower($2) in lower(title)) > 0
			OR position(lower($2) in lower(story)) > 0
			OR position(lower($2) in lower(visited_location)) > 0
		)` + storyOrder
	return s.queryStories(ctx, op, query, owner, q)
}

func (s *Storage) queryStories(ctx context.Context, op, query string, args ...any) ([]models.Story, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer rows.Close()

	stories := make([]models.Story, 0)
	for rows.Next() {
		st, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		stories = append(stories, *st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stories, nil
}

// GetStoryByOwner ищет историю по id среди историй владельца.
func (s *Storage) GetStoryByOwner(ctx context.Context, owner, id string) (*models.Story, error) {
	const op = "storage.GetStoryByOwner"
	query := `SELECT ` + storyColumns + ` FROM travel_stories WHERE id = $1 AND user_id = $2`
	return s.queryStory(ctx, op, query, id, owner)
}

// UpdateStory перезаписывает редактируемые поля. Владелец и флаг избранного не меняются.
func (s *Storage) UpdateStory(ctx context.Context, story models.Story) (*models.Story, error) {
	const op = "storage.UpdateStory"
	query := `UPDATE travel_stories
		SET title = $3, story = $4, visited_location = $5, image_url = $6, visited_date = $7
		WHERE id = $1 AND user_id = $2
		RETURNING ` + storyColumns
	return s.queryStory(ctx, op, query, story.ID, story.UserID,
		story.Title, story.Story, story.VisitedLocation, story.ImageURL, story.VisitedDate)
}

func (s *Storage) SetFavourite(ctx context.Context, owner, id string, isFavourite bool) (*models.Story, error) {
	const op = "storage.SetFavourite"
	query := `UPDATE travel_stories SET is_favourite = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + storyColumns
	return s.queryStory(ctx, op, query, id, owner, isFavourite)
}

// DeleteStory удаляет историю владельца и возвращает удалённую запись.
func (s *Storage) DeleteStory(ctx context.Context, owner, id string) (*models.Story, error) {
	const op = "storage.DeleteStory"
	query := `DELETE FROM travel_stories WHERE id = $1 AND user_id = $2 RETURNING ` + storyColumns
	return s.queryStory(ctx, op, query, id, owner)
}

func (s *Storage) queryStory(ctx context.Context, op, query string, args ...any) (*models.Story, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	st, err := scanStory(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return st, nil
}
