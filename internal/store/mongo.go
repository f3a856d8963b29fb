package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tammam101/temox/backend/internal/models"
)

// MongoStore persists contact requests in MongoDB.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("contact_requests")}
}

// EnsureIndexes creates the created_at index used when reviewing requests.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	})
	if err != nil {
		return fmt.Errorf("mongo index: %w", err)
	}
	return nil
}

func (s *MongoStore) InsertContact(ctx context.Context, sub *models.ContactSubmission) error {
	if _, err := s.col.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}
