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

// AssetRepository handles database operations related to assets.
type AssetRepository struct {
	collection *mongo.Collection
}

// NewAssetRepository creates a new instance of AssetRepository.
func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{
		collection: db.Collection("assets"),
	}
}

// CreateAsset inserts a new asset into the database.
func (r *AssetRepository) CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, asset)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert asset")
		return nil, fmt.Errorf("failed to insert asset: %v", err)
	}

	asset.ID = result.InsertedID.(primitive.ObjectID)
	return asset, nil
}

// GetAssetByID retrieves an asset by ID. Returns (nil, nil) when absent.
func (r *AssetRepository) GetAssetByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error) {
	var asset models.Asset
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&asset)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find asset: %v", err)
	}
	return &asset, nil
}

// GetAssetsByUser fetches all assets belonging to a user.
func (r *AssetRepository) GetAssetsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Asset, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %v", err)
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets: %v", err)
	}
	return assets, nil
}

// UpdateAsset applies a partial update to an asset document.
func (r *AssetRepository) UpdateAsset(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error {
	update["updated_at"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update asset: %v", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteAsset removes an asset from the database.
func (r *AssetRepository) DeleteAsset(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %v", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	logrus.WithField("assetID", id.Hex()).Info("Asset deleted")
	return nil
}
