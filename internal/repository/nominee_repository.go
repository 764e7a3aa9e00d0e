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
)

// NomineeRepository handles database operations related to nominees.
type NomineeRepository struct {
	collection *mongo.Collection
}

// NewNomineeRepository creates a new instance of NomineeRepository.
func NewNomineeRepository(db *mongo.Database) *NomineeRepository {
	return &NomineeRepository{
		collection: db.Collection("nominees"),
	}
}

// CreateNominee inserts a new nominee into the database.
func (r *NomineeRepository) CreateNominee(ctx context.Context, nominee *models.Nominee) (*models.Nominee, error) {
	nominee.CreatedAt = time.Now()
	nominee.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, nominee)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert nominee")
		return nil, fmt.Errorf("failed to insert nominee: %v", err)
	}

	nominee.ID = result.InsertedID.(primitive.ObjectID)
	return nominee, nil
}

// GetNomineeByID retrieves a nominee by ID. Returns (nil, nil) when absent.
func (r *NomineeRepository) GetNomineeByID(ctx context.Context, id primitive.ObjectID) (*models.Nominee, error) {
	var nominee models.Nominee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&nominee)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find nominee: %v", err)
	}
	return &nominee, nil
}

// GetNomineesByUser fetches all nominees belonging to a user.
func (r *NomineeRepository) GetNomineesByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Nominee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nominees: %v", err)
	}
	defer cursor.Close(ctx)

	var nominees []models.Nominee
	if err := cursor.All(ctx, &nominees); err != nil {
		return nil, fmt.Errorf("failed to decode nominees: %v", err)
	}
	return nominees, nil
}

// UpdateNominee applies a partial update to a nominee document.
func (r *NomineeRepository) UpdateNominee(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error {
	update["updated_at"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update nominee: %v", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteNominee removes a nominee from the database.
func (r *NomineeRepository) DeleteNominee(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete nominee: %v", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	logrus.WithField("nomineeID", id.Hex()).Info("Nominee deleted")
	return nil
}
