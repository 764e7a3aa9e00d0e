package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MoodRepository handles database operations for mood entries. Entries are
// append-only; there are no update or delete operations.
type MoodRepository struct {
	collection *mongo.Collection
}

// NewMoodRepository creates a new instance of MoodRepository.
func NewMoodRepository(db *mongo.Database) *MoodRepository {
	return &MoodRepository{
		collection: db.Collection("mood_entries"),
	}
}

// CreateEntry inserts a new mood entry.
func (r *MoodRepository) CreateEntry(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	entry.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert mood entry")
		return nil, fmt.Errorf("failed to insert mood entry: %v", err)
	}

	entry.ID = result.InsertedID.(primitive.ObjectID)
	return entry, nil
}

// GetEntriesByUser fetches a user's mood entries, most recent first.
func (r *MoodRepository) GetEntriesByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.MoodEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mood entries: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []models.MoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode mood entries: %v", err)
	}
	return entries, nil
}
