package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/pkg/notify"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SweepStore is the persistence surface the sweep needs.
type SweepStore interface {
	FindUsersWithActiveAlerts(ctx context.Context) ([]models.User, error)
	MarkAlertSent(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// CounterService increments the missed counter for a user.
type CounterService interface {
	IncrementMissed(ctx context.Context, userID primitive.ObjectID) error
}

// AlertSweeper scans users with active well-being alerts and, for each whose
// alert window has elapsed without a check-in, increments the missed counter
// and dispatches a reminder. The sweep only moves counters; escalation stays
// a separate, human-reviewed decision.
type AlertSweeper struct {
	store      SweepStore
	wellBeing  CounterService
	dispatcher notify.Dispatcher
}

// NewAlertSweeper creates a new instance of AlertSweeper.
func NewAlertSweeper(store SweepStore, wellBeing CounterService, dispatcher notify.Dispatcher) *AlertSweeper {
	return &AlertSweeper{
		store:      store,
		wellBeing:  wellBeing,
		dispatcher: dispatcher,
	}
}

// Run performs one sweep over all users with active alert settings.
func (s *AlertSweeper) Run(ctx context.Context) error {
	users, err := s.store.FindUsersWithActiveAlerts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users for sweep: %v", err)
	}

	now := time.Now()
	missed := 0

	for _, user := range users {
		if !WindowElapsed(user.WellBeing, now) {
			continue
		}

		if err := s.wellBeing.IncrementMissed(ctx, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"userID": user.ID.Hex(),
				"error":  err,
			}).Error("Failed to increment missed count during sweep")
			continue
		}

		if err := s.store.MarkAlertSent(ctx, user.ID, now); err != nil {
			logrus.WithError(err).Warn("Failed to mark alert sent")
		}

		s.remind(user)
		missed++
	}

	logrus.WithFields(logrus.Fields{
		"scanned": len(users),
		"missed":  missed,
	}).Info("Alert sweep completed")
	return nil
}

// WindowElapsed reports whether a user's alert window has passed since their
// last check-in or last reminder, whichever is later.
func WindowElapsed(wb models.WellBeingSettings, now time.Time) bool {
	if !wb.Configured || !wb.Active {
		return false
	}

	window := alertWindow(wb)
	if window <= 0 {
		return false
	}

	reference := wb.LastCheckIn
	if wb.LastAlertSent.After(reference) {
		reference = wb.LastAlertSent
	}
	if reference.IsZero() {
		// Never checked in and never reminded; anchor on nothing to
		// measure from, so wait for the first check-in.
		return false
	}

	deadline := reference.Add(window)
	if wb.AlertTime != "" {
		if t, err := time.Parse("15:04", wb.AlertTime); err == nil {
			deadline = time.Date(deadline.Year(), deadline.Month(), deadline.Day(),
				t.Hour(), t.Minute(), 0, 0, deadline.Location())
		}
	}

	return now.After(deadline)
}

func alertWindow(wb models.WellBeingSettings) time.Duration {
	switch wb.Frequency {
	case models.FrequencyDaily:
		return 24 * time.Hour
	case models.FrequencyWeekly:
		return 7 * 24 * time.Hour
	case models.FrequencyCustom:
		return time.Duration(wb.CustomDays) * 24 * time.Hour
	}
	return 0
}

func (s *AlertSweeper) remind(user models.User) {
	body := fmt.Sprintf("Hi %s, you missed your well-being check-in. Please confirm you are okay.", user.FullName)

	if user.WellBeing.EmailEnabled {
		if err := s.dispatcher.SendEmail(user.Email, "Missed well-being check-in", body); err != nil {
			logrus.WithError(err).Warn("Failed to send reminder email")
		}
	}
	if user.WellBeing.SMSEnabled {
		if err := s.dispatcher.SendSMS(user.Mobile, body); err != nil {
			logrus.WithError(err).Warn("Failed to send reminder SMS")
		}
	}
}
