package services

import (
	"context"
	"fmt"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityStore is the persistence surface for the audit trail.
type ActivityStore interface {
	CreateEntry(ctx context.Context, entry *models.ActivityLog) error
	GetEntries(ctx context.Context, category, severity string, limit int64) ([]models.ActivityLog, error)
	GetEntriesByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ActivityLog, error)
}

// ActivityService appends and queries audit trail entries.
type ActivityService struct {
	store ActivityStore
}

// NewActivityService creates a new instance of ActivityService.
func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// Record appends an audit entry. Failures are logged but reported to the
// caller so security-relevant gaps are visible.
func (s *ActivityService) Record(ctx context.Context, entry *models.ActivityLog) error {
	if entry.Severity == "" {
		entry.Severity = models.SeverityInfo
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		logrus.WithError(err).Error("Failed to record activity")
		return fmt.Errorf("failed to record activity: %v", err)
	}
	return nil
}

// GetEntries fetches audit entries for the admin dashboard.
func (s *ActivityService) GetEntries(ctx context.Context, category, severity string, limit int64) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.GetEntries(ctx, category, severity, limit)
}

// GetUserEntries fetches audit entries referencing a user.
func (s *ActivityService) GetUserEntries(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.GetEntriesByUser(ctx, userID, limit)
}
