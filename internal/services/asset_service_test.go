package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memAssetStore is an in-memory asset repository.
type memAssetStore struct {
	mu     sync.Mutex
	assets map[primitive.ObjectID]*models.Asset
}

func newMemAssetStore() *memAssetStore {
	return &memAssetStore{assets: make(map[primitive.ObjectID]*models.Asset)}
}

func (m *memAssetStore) CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset.ID = primitive.NewObjectID()
	copied := *asset
	m.assets[asset.ID] = &copied
	return asset, nil
}

func (m *memAssetStore) GetAssetByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, ok := m.assets[id]
	if !ok {
		return nil, nil
	}
	copied := *asset
	return &copied, nil
}

func (m *memAssetStore) GetAssetsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Asset
	for _, asset := range m.assets {
		if asset.UserID == userID {
			out = append(out, *asset)
		}
	}
	return out, nil
}

func (m *memAssetStore) UpdateAsset(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, ok := m.assets[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if title, ok := update["title"].(string); ok {
		asset.Title = title
	}
	return nil
}

func (m *memAssetStore) DeleteAsset(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.assets, id)
	return nil
}

func TestCreateAssetValidation(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{Email: "owner@example.com", Mobile: "+77010001122", Status: models.StatusActive}
	users := newMemUserStore(owner)
	svc := services.NewAssetService(newMemAssetStore(), users)

	t.Run("invalid type rejected", func(t *testing.T) {
		_, err := svc.CreateAsset(ctx, userPrincipal(owner.ID), &models.Asset{
			Title: "Apartment",
			Type:  "yacht",
		})
		require.Error(t, err)
		assert.Equal(t, 400, services.HTTPStatus(err))
	})

	t.Run("invalid storage rejected", func(t *testing.T) {
		_, err := svc.CreateAsset(ctx, userPrincipal(owner.ID), &models.Asset{
			Title:   "Apartment",
			Type:    models.AssetRealEstate,
			Storage: "dropbox",
		})
		require.Error(t, err)
		assert.Equal(t, 400, services.HTTPStatus(err))
	})

	t.Run("valid asset defaults to local storage", func(t *testing.T) {
		created, err := svc.CreateAsset(ctx, userPrincipal(owner.ID), &models.Asset{
			Title:    "Apartment",
			Type:     models.AssetRealEstate,
			Value:    120000,
			Currency: "USD",
		})
		require.NoError(t, err)
		assert.Equal(t, models.StorageLocal, created.Storage)
		assert.Equal(t, owner.ID, created.UserID)
	})
}

func TestCreateAssetForMissingUser(t *testing.T) {
	ctx := context.Background()
	assets := newMemAssetStore()
	svc := services.NewAssetService(assets, newMemUserStore())

	_, err := svc.CreateAsset(ctx, userPrincipal(primitive.NewObjectID()), &models.Asset{
		Title: "Apartment",
		Type:  models.AssetRealEstate,
	})
	require.Error(t, err)
	assert.Equal(t, 404, services.HTTPStatus(err))
	assert.Empty(t, assets.assets)
}

func TestAdministratorOwnsNoAssets(t *testing.T) {
	ctx := context.Background()
	svc := services.NewAssetService(newMemAssetStore(), newMemUserStore())

	list, err := svc.GetAssets(ctx, adminPrincipal)
	require.NoError(t, err)
	assert.Empty(t, list)
}
