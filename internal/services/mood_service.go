package services

import (
	"context"
	"fmt"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodStore is the persistence surface for mood entries.
type MoodStore interface {
	CreateEntry(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetEntriesByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.MoodEntry, error)
}

// MoodService handles the append-only wellness log.
type MoodService struct {
	moods MoodStore
	users UserFinder
}

// NewMoodService creates a new instance of MoodService.
func NewMoodService(moods MoodStore, users UserFinder) *MoodService {
	return &MoodService{
		moods: moods,
		users: users,
	}
}

// CreateEntry appends a mood entry for the owning user. Entries are
// immutable after creation.
func (s *MoodService) CreateEntry(ctx context.Context, principal models.Principal, entry *models.MoodEntry) (*models.MoodEntry, error) {
	if principal.IsAdministrator() {
		return nil, ErrForbidden("the administrator account cannot own mood entries")
	}

	if entry.Mood == "" {
		return nil, ErrValidation("mood is required")
	}
	if entry.Intensity < 1 || entry.Intensity > 10 {
		return nil, ErrValidation("intensity must be between 1 and 10")
	}

	owner, err := s.users.GetUserByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner: %v", err)
	}
	if owner == nil {
		return nil, ErrNotFound("user not found")
	}

	entry.UserID = principal.UserID
	return s.moods.CreateEntry(ctx, entry)
}

// GetEntries returns the principal's mood entries, most recent first.
func (s *MoodService) GetEntries(ctx context.Context, principal models.Principal, limit int64) ([]models.MoodEntry, error) {
	if principal.IsAdministrator() {
		return []models.MoodEntry{}, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.moods.GetEntriesByUser(ctx, principal.UserID, limit)
}
