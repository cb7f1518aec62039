// Package story реализует операции над историями путешествий.
//
// Каждая операция получает владельца из проверенного токена и никогда из тела запроса.
// Чтение, изменение и удаление конкретной истории проходят через owned:
// выборку по id, ограниченную владельцем.
package story

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

// Repository определяет методы для работы с историями в хранилище.
// Все методы, кроме CreateStory, фильтруют по владельцу.
type Repository interface {
	CreateStory(ctx context.Context, story models.Story) error
	ListStoriesByOwner(ctx context.Context, owner string) ([]models.Story, error)
	GetStoryByOwner(ctx context.Context, owner, id string) (*models.Story, error)
	UpdateStory(ctx context.Context, story models.Story) (*models.Story, error)
	SetFavourite(ctx context.Context, owner, id string, isFavourite bool) (*models.Story, error)
	DeleteStory(ctx context.Context, owner, id string) (*models.Story, error)
	SearchStories(ctx context.Context, owner, query string) ([]models.Story, error)
}

// ImageCleaner удаляет изображение удалённой истории в фоне.
type ImageCleaner interface {
	Enqueue(ctx context.Context, imageURL string) error
}

// Service реализует бизнес-логику работы с историями.
type Service struct {
	log            *slog.Logger
	repo           Repository
	cleaner        ImageCleaner
	placeholderURL string
	now            func() time.Time
}

// New создает новый экземпляр Service. placeholderURL подставляется при
// редактировании истории без изображения.
func New(log *slog.Logger, repo Repository, cleaner ImageCleaner, placeholderURL string) *Service {
	return &Service{
		log:            log,
		repo:           repo,
		cleaner:        cleaner,
		placeholderURL: placeholderURL,
		now:            time.Now,
	}
}

// Create добавляет историю владельцу. ImageURL необязателен.
func (s *Service) Create(ctx context.Context, owner string, in models.StoryInput) (*models.Story, error) {
	const op = "story.Create"
	if in.Title == "" || in.Story == "" || in.VisitedLocation == "" || in.VisitedDate == "" {
		return nil, common.NewValidationError("All fields are required except image URL.")
	}
	visited, err := in.VisitedDate.Time()
	if err != nil {
		return nil, common.NewValidationError("Invalid visited date format.")
	}

	st := models.Story{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Story:           in.Story,
		VisitedLocation: in.VisitedLocation,
		UserID:          owner,
		ImageURL:        in.ImageURL,
		VisitedDate:     visited,
		CreatedOn:       s.now().UTC().Truncate(time.Millisecond),
	}
	if err = s.repo.CreateStory(ctx, st); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &st, nil
}

// ListAll возвращает истории владельца, избранные первыми.
func (s *Service) ListAll(ctx context.Context, owner string) ([]models.Story, error) {
	const op = "story.ListAll"
	stories, err := s.repo.ListStoriesByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stories, nil
}

// Get возвращает историю владельца по id.
func (s *Service) Get(ctx context.Context, owner, id string) (*models.Story, error) {
	return s.owned(ctx, owner, id)
}

// Edit перезаписывает поля истории. В отличие от Create, все поля обязательны.
// Пробельный ImageURL заменяется заглушкой.
func (s *Service) Edit(ctx context.Context, owner, id string, in models.StoryInput) (*models.Story, error) {
	const op = "story.Edit"
	if in.Title == "" || in.Story == "" || in.VisitedLocation == "" || in.ImageURL == "" || in.VisitedDate == "" {
		return nil, common.NewValidationError("All fields are required")
	}
	visited, err := in.VisitedDate.Time()
	if err != nil {
		return nil, common.NewValidationError("Invalid visited date format.")
	}

	current, err := s.owned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = s.placeholderURL
	}
	current.Title = in.Title
	current.Story = in.Story
	current.VisitedLocation = in.VisitedLocation
	current.ImageURL = imageURL
	current.VisitedDate = visited

	updated, err := s.repo.UpdateStory(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// SetFavourite меняет флаг избранного у истории владельца.
func (s *Service) SetFavourite(ctx context.Context, owner, id string, isFavourite bool) (*models.Story, error) {
	const op = "story.SetFavourite"
	if _, err := s.owned(ctx, owner, id); err != nil {
		return nil, err
	}
	updated, err := s.repo.SetFavourite(ctx, owner, id, isFavourite)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Delete удаляет историю, затем ставит её изображение в очередь на удаление.
// Ошибка постановки в очередь только логируется.
func (s *Service) Delete(ctx context.Context, owner, id string) error {
	const op = "story.Delete"
	if _, err := s.owned(ctx, owner, id); err != nil {
		return err
	}
	deleted, err := s.repo.DeleteStory(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if deleted.ImageURL == "" || deleted.ImageURL == s.placeholderURL {
		return nil
	}
	if err = s.cleaner.Enqueue(ctx, deleted.ImageURL); err != nil {
		s.log.Warn("failed to schedule image cleanup",
			slog.String("op", op),
			slog.String("image_url", deleted.ImageURL),
			sl.Err(err),
		)
	}
	return nil
}

// Search ищет подстроку в историях владельца без учёта регистра.
func (s *Service) Search(ctx context.Context, owner, query string) ([]models.Story, error) {
	const op = "story.Search"
	if query == "" {
		return nil, common.NewValidationError("query is required")
	}
	// NUL и битый UTF-8 хранилище не принимает в тексте запроса.
	if strings.ContainsRune(query, 0) || !utf8.ValidString(query) {
		return nil, common.NewValidationError("Invalid search query")
	}
	stories, err := s.repo.SearchStories(ctx, owner, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stories, nil
}

// owned — единственная точка доступа к истории по id: выборка ограничена владельцем.
// Чужая, несуществующая и некорректная id неразличимы и дают common.ErrNotFound.
func (s *Service) owned(ctx context.Context, owner, id string) (*models.Story, error) {
	const op = "story.owned"
	if owner == "" || id == "" {
		return nil, fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, common.ErrNotFound)
	}
	st, err := s.repo.GetStoryByOwner(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return st, nil
}
