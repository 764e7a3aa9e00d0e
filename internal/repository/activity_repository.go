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

// ActivityRepository handles the append-only audit trail.
type ActivityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activity_logs"),
	}
}

// CreateEntry inserts a new audit trail entry.
func (r *ActivityRepository) CreateEntry(ctx context.Context, entry *models.ActivityLog) error {
	entry.Timestamp = time.Now()

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert activity log entry")
		return fmt.Errorf("failed to insert activity log entry: %v", err)
	}
	return nil
}

// GetEntries fetches audit entries, newest first, optionally filtered by
// category and severity.
func (r *ActivityRepository) GetEntries(ctx context.Context, category, severity string, limit int64) ([]models.ActivityLog, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if severity != "" {
		filter["severity"] = severity
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity log: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode activity log: %v", err)
	}
	return entries, nil
}

// GetEntriesByUser fetches audit entries referencing a specific user.
func (r *ActivityRepository) GetEntriesByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ActivityLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity log: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode activity log: %v", err)
	}
	return entries, nil
}
