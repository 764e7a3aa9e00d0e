package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RegistrationRepository stores phase-1 registration payloads in Redis under
// a correlation token with a TTL. Expiry invalidates phase 2; the association
// survives process restarts, unlike an in-process map.
type RegistrationRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRegistrationRepository creates a new instance of RegistrationRepository.
func NewRegistrationRepository(client *redis.Client, ttl time.Duration) *RegistrationRepository {
	return &RegistrationRepository{
		client: client,
		ttl:    ttl,
	}
}

func registrationKey(token string) string {
	return "registration:" + token
}

// Save stores a pending registration under the given correlation token.
func (r *RegistrationRepository) Save(ctx context.Context, token string, pending models.PendingRegistration) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending registration: %v", err)
	}

	if err := r.client.Set(ctx, registrationKey(token), payload, r.ttl).Err(); err != nil {
		logrus.WithError(err).Error("Failed to store pending registration")
		return fmt.Errorf("failed to store pending registration: %v", err)
	}
	return nil
}

// Get looks up a pending registration. Returns (nil, nil) when the token is
// unknown or has expired.
func (r *RegistrationRepository) Get(ctx context.Context, token string) (*models.PendingRegistration, error) {
	payload, err := r.client.Get(ctx, registrationKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pending registration: %v", err)
	}

	var pending models.PendingRegistration
	if err := json.Unmarshal(payload, &pending); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending registration: %v", err)
	}
	return &pending, nil
}

// Delete removes a pending registration once phase 2 consumed it.
func (r *RegistrationRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, registrationKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete pending registration: %v", err)
	}
	return nil
}
