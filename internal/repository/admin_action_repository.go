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

// AdminActionRepository handles database operations for admin audit records.
type AdminActionRepository struct {
	collection *mongo.Collection
}

// NewAdminActionRepository creates a new instance of AdminActionRepository.
func NewAdminActionRepository(db *mongo.Database) *AdminActionRepository {
	return &AdminActionRepository{
		collection: db.Collection("admin_actions"),
	}
}

// CreateAction inserts a new admin action.
func (r *AdminActionRepository) CreateAction(ctx context.Context, action *models.AdminAction) (*models.AdminAction, error) {
	action.CreatedAt = time.Now()
	action.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, action)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert admin action")
		return nil, fmt.Errorf("failed to insert admin action: %v", err)
	}

	action.ID = result.InsertedID.(primitive.ObjectID)
	return action, nil
}

// GetActionByID retrieves an admin action by ID. Returns (nil, nil) when absent.
func (r *AdminActionRepository) GetActionByID(ctx context.Context, id primitive.ObjectID) (*models.AdminAction, error) {
	var action models.AdminAction
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&action)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin action: %v", err)
	}
	return &action, nil
}

// UpdateActionStatus changes the status of an admin action.
func (r *AdminActionRepository) UpdateActionStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update admin action: %v", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetActions fetches admin actions, newest first, optionally filtered by status.
func (r *AdminActionRepository) GetActions(ctx context.Context, status string, limit int64) ([]models.AdminAction, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin actions: %v", err)
	}
	defer cursor.Close(ctx)

	var actions []models.AdminAction
	if err := cursor.All(ctx, &actions); err != nil {
		return nil, fmt.Errorf("failed to decode admin actions: %v", err)
	}
	return actions, nil
}

// GetActionsByTarget fetches all actions recorded against a user.
func (r *AdminActionRepository) GetActionsByTarget(ctx context.Context, targetID primitive.ObjectID) ([]models.AdminAction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"target_id": targetID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin actions: %v", err)
	}
	defer cursor.Close(ctx)

	var actions []models.AdminAction
	if err := cursor.All(ctx, &actions); err != nil {
		return nil, fmt.Errorf("failed to decode admin actions: %v", err)
	}
	return actions, nil
}
