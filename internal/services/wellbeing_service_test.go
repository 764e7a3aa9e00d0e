package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func configuredUser(missed, max int, escalation bool) *models.User {
	return &models.User{
		ID:     primitive.NewObjectID(),
		Status: models.StatusActive,
		WellBeing: models.WellBeingSettings{
			Configured:        true,
			Active:            true,
			Frequency:         models.FrequencyDaily,
			MaxMissedAlerts:   max,
			EscalationEnabled: escalation,
			MissedCount:       missed,
		},
	}
}

func TestIsExceeded(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"at threshold", configuredUser(15, 15, true), true},
		{"over threshold", configuredUser(20, 15, true), true},
		{"under threshold", configuredUser(14, 15, true), false},
		{"escalation disabled", configuredUser(20, 15, false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.IsExceeded(tt.user))
		})
	}

	t.Run("unconfigured settings never exceed", func(t *testing.T) {
		user := &models.User{WellBeing: models.WellBeingSettings{MissedCount: 99}}
		assert.False(t, services.IsExceeded(user))
	})

	t.Run("inactive settings never exceed", func(t *testing.T) {
		user := configuredUser(20, 15, true)
		user.WellBeing.Active = false
		assert.False(t, services.IsExceeded(user))
	})

	t.Run("non-positive threshold never exceeds", func(t *testing.T) {
		user := configuredUser(20, 0, true)
		assert.False(t, services.IsExceeded(user))
	})
}

func TestRecordCheckInResetsCounter(t *testing.T) {
	ctx := context.Background()
	user := configuredUser(15, 15, true)
	store := newMemUserStore(user)
	svc := services.NewWellBeingService(store)

	exceeded, err := svc.ListExceeded(ctx)
	require.NoError(t, err)
	require.Len(t, exceeded, 1)

	before := time.Now()
	require.NoError(t, svc.RecordCheckIn(ctx, user.ID))

	reloaded, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.WellBeing.MissedCount)
	assert.False(t, reloaded.WellBeing.LastCheckIn.Before(before))

	exceeded, err = svc.ListExceeded(ctx)
	require.NoError(t, err)
	assert.Empty(t, exceeded)

	// Check-in is idempotent.
	require.NoError(t, svc.RecordCheckIn(ctx, user.ID))
	reloaded, err = store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.WellBeing.MissedCount)
}

func TestRecordCheckInUnknownUser(t *testing.T) {
	svc := services.NewWellBeingService(newMemUserStore())

	err := svc.RecordCheckIn(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, 404, services.HTTPStatus(err))
}

func TestIncrementMissedNeverDecreases(t *testing.T) {
	ctx := context.Background()
	user := configuredUser(0, 5, true)
	store := newMemUserStore(user)
	svc := services.NewWellBeingService(store)

	for i := 1; i <= 3; i++ {
		require.NoError(t, svc.IncrementMissed(ctx, user.ID))
		reloaded, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, i, reloaded.WellBeing.MissedCount)
	}
}

func TestListExceededOrderingAndGates(t *testing.T) {
	ctx := context.Background()
	atLimit := configuredUser(15, 15, true)       // ratio 1.0
	farOver := configuredUser(30, 10, true)       // ratio 3.0
	disabled := configuredUser(20, 15, false)     // gated off
	underLimit := configuredUser(3, 15, true)     // not exceeded
	unconfigured := &models.User{ID: primitive.NewObjectID(), WellBeing: models.WellBeingSettings{MissedCount: 50}}

	store := newMemUserStore(atLimit, farOver, disabled, underLimit, unconfigured)
	svc := services.NewWellBeingService(store)

	exceeded, err := svc.ListExceeded(ctx)
	require.NoError(t, err)
	require.Len(t, exceeded, 2)
	assert.Equal(t, farOver.ID, exceeded[0].ID)
	assert.Equal(t, atLimit.ID, exceeded[1].ID)
}

func TestUpdateSettingsValidation(t *testing.T) {
	ctx := context.Background()
	user := configuredUser(4, 15, true)
	store := newMemUserStore(user)
	svc := services.NewWellBeingService(store)

	valid := models.WellBeingSettings{
		Active:            true,
		Frequency:         models.FrequencyWeekly,
		AlertTime:         "09:30",
		MaxMissedAlerts:   10,
		EscalationEnabled: true,
	}

	tests := []struct {
		name   string
		mutate func(*models.WellBeingSettings)
	}{
		{"unknown frequency", func(s *models.WellBeingSettings) { s.Frequency = "fortnightly" }},
		{"custom without days", func(s *models.WellBeingSettings) { s.Frequency = models.FrequencyCustom; s.CustomDays = 0 }},
		{"custom days too large", func(s *models.WellBeingSettings) { s.Frequency = models.FrequencyCustom; s.CustomDays = 31 }},
		{"threshold zero", func(s *models.WellBeingSettings) { s.MaxMissedAlerts = 0 }},
		{"threshold too large", func(s *models.WellBeingSettings) { s.MaxMissedAlerts = 51 }},
		{"malformed alert time", func(s *models.WellBeingSettings) { s.AlertTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := valid
			tt.mutate(&settings)

			err := svc.UpdateSettings(ctx, user.ID, settings)
			require.Error(t, err)
			assert.Equal(t, 400, services.HTTPStatus(err))

			// Rejection leaves the stored settings untouched.
			reloaded, err := store.GetUserByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, 15, reloaded.WellBeing.MaxMissedAlerts)
			assert.Equal(t, models.FrequencyDaily, reloaded.WellBeing.Frequency)
		})
	}
}

func TestUpdateSettingsKeepsCounter(t *testing.T) {
	ctx := context.Background()
	user := configuredUser(4, 15, true)
	store := newMemUserStore(user)
	svc := services.NewWellBeingService(store)

	settings := models.WellBeingSettings{
		Active:            true,
		Frequency:         models.FrequencyCustom,
		CustomDays:        10,
		AlertTime:         "08:00",
		MaxMissedAlerts:   5,
		EscalationEnabled: true,
	}
	require.NoError(t, svc.UpdateSettings(ctx, user.ID, settings))

	got, err := svc.GetSettings(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.MaxMissedAlerts)
	assert.Equal(t, models.FrequencyCustom, got.Frequency)
	assert.Equal(t, 10, got.CustomDays)
	// Changing the threshold does not reset progress.
	assert.Equal(t, 4, got.MissedCount)
}

func TestUpdateSettingsClearsCustomDaysForFixedFrequencies(t *testing.T) {
	ctx := context.Background()
	user := configuredUser(0, 15, true)
	store := newMemUserStore(user)
	svc := services.NewWellBeingService(store)

	settings := models.WellBeingSettings{
		Active:          true,
		Frequency:       models.FrequencyDaily,
		CustomDays:      12,
		MaxMissedAlerts: 5,
	}
	require.NoError(t, svc.UpdateSettings(ctx, user.ID, settings))

	got, err := svc.GetSettings(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CustomDays)
}
