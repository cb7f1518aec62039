package mongostore

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magabrotheeeer/travel-journal/internal/models"
)

var storySort = bson.D{{Key: "isFavourite", Value: -1}, {Key: "createdOn", Value: -1}}

func (s *Storage) CreateStory(ctx context.Context, story models.Story) error {
	const op = "mongostore.CreateStory"
	if _, err := s.stories.InsertOne(ctx, story); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

func (s *Storage) ListStoriesByOwner(ctx context.Context, owner string) ([]models.Story, error) {
	const op = "mongostore.ListStoriesByOwner"
	return s.findStories(ctx, op, bson.M{"userId": owner})
}

// SearchStories ищет подстроку без учёта регистра. Запрос экранируется,
// поэтому спецсимволы регулярных выражений сравниваются буквально.
func (s *Storage) SearchStories(ctx context.Context, owner, q string) ([]models.Story, error) {
	const op = "mongostore.SearchStories"
	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{
		"userId": owner,
		"$or": bson.A{
			bson.M{"title": re},
			bson.M{"story": re},
			bson.M{"visitedLocation": re},
		},
	}
	return s.findStories(ctx, op, filter)
}

func (s *Storage) findStories(ctx context.Context, op string, filter bson.M) ([]models.Story, error) {
	cur, err := s.stories.Find(ctx, filter, options.Find().SetSort(storySort))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	stories := make([]models.Story, 0)
	if err = cur.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stories, nil
}

func (s *Storage) GetStoryByOwner(ctx context.Context, owner, id string) (*models.Story, error) {
	const op = "mongostore.GetStoryByOwner"
	var st models.Story
	if err := s.stories.FindOne(ctx, ownerFilter(owner, id)).Decode(&st); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &st, nil
}

func (s *Storage) UpdateStory(ctx context.Context, story models.Story) (*models.Story, error) {
	const op = "mongostore.UpdateStory"
	update := bson.M{"$set": bson.M{
		"title":           story.Title,
		"story":           story.Story,
		"visitedLocation": story.VisitedLocation,
		"imageUrl":        story.ImageURL,
		"visitedDate":     story.VisitedDate,
	}}
	return s.updateStory(ctx, op, ownerFilter(story.UserID, story.ID), update)
}

func (s *Storage) SetFavourite(ctx context.Context, owner, id string, isFavourite bool) (*models.Story, error) {
	const op = "mongostore.SetFavourite"
	update := bson.M{"$set": bson.M{"isFavourite": isFavourite}}
	return s.updateStory(ctx, op, ownerFilter(owner, id), update)
}

func (s *Storage) updateStory(ctx context.Context, op string, filter, update bson.M) (*models.Story, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var st models.Story
	if err := s.stories.FindOneAndUpdate(ctx, filter, update, opts).Decode(&st); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &st, nil
}

func (s *Storage) DeleteStory(ctx context.Context, owner, id string) (*models.Story, error) {
	const op = "mongostore.DeleteStory"
	var st models.Story
	if err := s.stories.FindOneAndDelete(ctx, ownerFilter(owner, id)).Decode(&st); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &st, nil
}

// ownerFilter адресует историю только вместе с владельцем.
func ownerFilter(owner, id string) bson.M {
	return bson.M{"_id": id, "userId": owner}
}
