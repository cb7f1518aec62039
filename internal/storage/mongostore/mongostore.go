// Package mongostore реализует хранилище пользователей и историй на MongoDB.
// Поведение совпадает с PostgreSQL-хранилищем из пакета storage.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/magabrotheeeer/travel-journal/internal/common"
)

const (
	usersCollection   = "users"
	storiesCollection = "travelstories"
)

// Storage хранит пользователей и истории в двух коллекциях.
type Storage struct {
	client  *mongo.Client
	users   *mongo.Collection
	stories *mongo.Collection
}

// New подключается к MongoDB и создаёт индексы.
func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "mongostore.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(database)
	s := &Storage{
		client:  client,
		users:   db.Collection(usersCollection),
		stories: db.Collection(storiesCollection),
	}
	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.stories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "isFavourite", Value: -1},
			{Key: "createdOn", Value: -1},
		},
	})
	return err
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Close() error {
	return s.client.Disconnect(context.Background())
}

func mapError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return common.ErrAlreadyExists
	}
	return err
}
