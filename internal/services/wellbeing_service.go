package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Threshold bounds for max missed alerts.
const (
	MinMissedAlerts = 1
	MaxMissedAlerts = 50
)

// Custom frequency day-count bounds.
const (
	MinCustomDays = 1
	MaxCustomDays = 30
)

var alertTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// WellBeingStore is the persistence surface the counter engine needs.
type WellBeingStore interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ResetMissedCount(ctx context.Context, id primitive.ObjectID, checkInAt time.Time) error
	IncrementMissedCount(ctx context.Context, id primitive.ObjectID) error
	UpdateWellBeingSettings(ctx context.Context, id primitive.ObjectID, settings models.WellBeingSettings) error
	FindEscalationCandidates(ctx context.Context) ([]models.User, error)
}

// WellBeingService maintains the per-user missed-check-in counter that drives
// the escalation workflow.
type WellBeingService struct {
	store WellBeingStore
}

// NewWellBeingService creates a new instance of WellBeingService.
func NewWellBeingService(store WellBeingStore) *WellBeingService {
	return &WellBeingService{store: store}
}

// RecordCheckIn resets the user's missed counter to zero and stamps the
// check-in time. Repeated calls are harmless.
func (s *WellBeingService) RecordCheckIn(ctx context.Context, userID primitive.ObjectID) error {
	err := s.store.ResetMissedCount(ctx, userID, time.Now())
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound("user not found")
	}
	if err != nil {
		return fmt.Errorf("failed to record check-in: %v", err)
	}

	logrus.WithField("userID", userID.Hex()).Info("Check-in recorded")
	return nil
}

// IncrementMissed bumps the user's missed counter by one. The alert sweep
// calls this once per elapsed alert window.
func (s *WellBeingService) IncrementMissed(ctx context.Context, userID primitive.ObjectID) error {
	err := s.store.IncrementMissedCount(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound("user not found")
	}
	if err != nil {
		return fmt.Errorf("failed to increment missed count: %v", err)
	}
	return nil
}

// IsExceeded reports whether a user is eligible for escalation review.
// Users without configured settings, with inactive settings, with escalation
// disabled, or with a non-positive threshold are never eligible.
func IsExceeded(user *models.User) bool {
	wb := user.WellBeing
	if !wb.Configured || !wb.Active || !wb.EscalationEnabled {
		return false
	}
	if wb.MaxMissedAlerts <= 0 {
		return false
	}
	return wb.MissedCount >= wb.MaxMissedAlerts
}

// ListExceeded returns every user eligible for escalation review, ordered by
// descending missed/threshold ratio, ties broken by ID. The administrator
// principal is never persisted and therefore never appears here.
func (s *WellBeingService) ListExceeded(ctx context.Context) ([]models.User, error) {
	candidates, err := s.store.FindEscalationCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exceeded users: %v", err)
	}

	exceeded := make([]models.User, 0, len(candidates))
	for _, user := range candidates {
		if IsExceeded(&user) {
			exceeded = append(exceeded, user)
		}
	}

	sort.Slice(exceeded, func(i, j int) bool {
		ri := ratio(exceeded[i].WellBeing)
		rj := ratio(exceeded[j].WellBeing)
		if ri != rj {
			return ri > rj
		}
		return exceeded[i].ID.Hex() < exceeded[j].ID.Hex()
	})

	return exceeded, nil
}

func ratio(wb models.WellBeingSettings) float64 {
	return float64(wb.MissedCount) / float64(wb.MaxMissedAlerts)
}

// UpdateSettings validates and persists a well-being configuration change.
// The missed counter and check-in timestamps are left untouched: raising or
// lowering the threshold does not reset progress.
func (s *WellBeingService) UpdateSettings(ctx context.Context, userID primitive.ObjectID, settings models.WellBeingSettings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}

	if settings.Frequency != models.FrequencyCustom {
		settings.CustomDays = 0
	}

	err := s.store.UpdateWellBeingSettings(ctx, userID, settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound("user not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update settings: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"userID":    userID.Hex(),
		"frequency": settings.Frequency,
		"threshold": settings.MaxMissedAlerts,
	}).Info("Well-being settings updated")
	return nil
}

// ValidateSettings checks a settings payload against the configuration rules.
func ValidateSettings(settings models.WellBeingSettings) error {
	switch settings.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly:
	case models.FrequencyCustom:
		if settings.CustomDays < MinCustomDays || settings.CustomDays > MaxCustomDays {
			return ErrValidation(fmt.Sprintf("custom_days must be between %d and %d", MinCustomDays, MaxCustomDays))
		}
	default:
		return ErrValidation("frequency must be daily, weekly or custom")
	}

	if settings.AlertTime != "" && !alertTimeRegex.MatchString(settings.AlertTime) {
		return ErrValidation("alert_time must be in HH:MM format")
	}

	if settings.MaxMissedAlerts < MinMissedAlerts || settings.MaxMissedAlerts > MaxMissedAlerts {
		return ErrValidation(fmt.Sprintf("max_missed_alerts must be between %d and %d", MinMissedAlerts, MaxMissedAlerts))
	}

	return nil
}

// GetSettings reads a user's current well-being settings.
func (s *WellBeingService) GetSettings(ctx context.Context, userID primitive.ObjectID) (*models.WellBeingSettings, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %v", err)
	}
	if user == nil {
		return nil, ErrNotFound("user not found")
	}
	return &user.WellBeing, nil
}
