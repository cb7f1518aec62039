package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/travel-journal/internal/models"
)

func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "mongostore.CreateUser"
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "mongostore.GetUserByEmail"
	return s.findUser(ctx, op, bson.M{"email": email})
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "mongostore.GetUserByID"
	return s.findUser(ctx, op, bson.M{"_id": id})
}

func (s *Storage) findUser(ctx context.Context, op string, filter bson.M) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &u, nil
}
