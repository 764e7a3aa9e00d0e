package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssetStore is the persistence surface for assets.
type AssetStore interface {
	CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error)
	GetAssetByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error)
	GetAssetsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error
	DeleteAsset(ctx context.Context, id primitive.ObjectID) error
}

// AssetService handles business logic for asset records.
type AssetService struct {
	assets AssetStore
	users  UserFinder
}

// NewAssetService creates a new instance of AssetService.
func NewAssetService(assets AssetStore, users UserFinder) *AssetService {
	return &AssetService{
		assets: assets,
		users:  users,
	}
}

// CreateAsset creates an asset for the owning user. The owner must exist;
// nothing is written otherwise.
func (s *AssetService) CreateAsset(ctx context.Context, principal models.Principal, asset *models.Asset) (*models.Asset, error) {
	if principal.IsAdministrator() {
		return nil, ErrForbidden("the administrator account cannot own assets")
	}

	if asset.Title == "" {
		return nil, ErrValidation("title is required")
	}
	if !models.ValidAssetType(asset.Type) {
		return nil, ErrValidation("invalid asset type")
	}
	if asset.Storage == "" {
		asset.Storage = models.StorageLocal
	}
	if !models.ValidStorage(asset.Storage) {
		return nil, ErrValidation("invalid storage location")
	}
	if asset.Value < 0 {
		return nil, ErrValidation("value must not be negative")
	}

	owner, err := s.users.GetUserByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner: %v", err)
	}
	if owner == nil {
		return nil, ErrNotFound("user not found")
	}

	asset.UserID = principal.UserID

	created, err := s.assets.CreateAsset(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"assetID": created.ID.Hex(),
		"userID":  principal.UserID.Hex(),
		"type":    created.Type,
	}).Info("Asset created")
	return created, nil
}

// GetAssets returns all assets owned by the principal. The administrator
// principal owns no per-user records, so the query short-circuits.
func (s *AssetService) GetAssets(ctx context.Context, principal models.Principal) ([]models.Asset, error) {
	if principal.IsAdministrator() {
		return []models.Asset{}, nil
	}
	return s.assets.GetAssetsByUser(ctx, principal.UserID)
}

// GetAsset returns a single asset, enforcing ownership.
func (s *AssetService) GetAsset(ctx context.Context, principal models.Principal, id primitive.ObjectID) (*models.Asset, error) {
	if principal.IsAdministrator() {
		return nil, ErrNotFound("asset not found")
	}

	asset, err := s.assets.GetAssetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %v", err)
	}
	if asset == nil || asset.UserID != principal.UserID {
		return nil, ErrNotFound("asset not found")
	}
	return asset, nil
}

// UpdateAsset updates an asset's fields, enforcing ownership.
func (s *AssetService) UpdateAsset(ctx context.Context, principal models.Principal, id primitive.ObjectID, update map[string]interface{}) (*models.Asset, error) {
	if _, err := s.GetAsset(ctx, principal, id); err != nil {
		return nil, err
	}

	if assetType, ok := update["type"].(string); ok && !models.ValidAssetType(assetType) {
		return nil, ErrValidation("invalid asset type")
	}
	if storage, ok := update["storage"].(string); ok && !models.ValidStorage(storage) {
		return nil, ErrValidation("invalid storage location")
	}

	delete(update, "user_id")

	err := s.assets.UpdateAsset(ctx, id, update)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound("asset not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update asset: %v", err)
	}

	return s.GetAsset(ctx, principal, id)
}

// DeleteAsset removes an asset, enforcing ownership.
func (s *AssetService) DeleteAsset(ctx context.Context, principal models.Principal, id primitive.ObjectID) error {
	if _, err := s.GetAsset(ctx, principal, id); err != nil {
		return err
	}

	err := s.assets.DeleteAsset(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound("asset not found")
	}
	if err != nil {
		return fmt.Errorf("failed to delete asset: %v", err)
	}
	return nil
}
