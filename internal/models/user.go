package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account status values.
const (
	StatusActive      = "active"
	StatusSuspended   = "suspended"
	StatusDeactivated = "deactivated"
)

// Alert frequency values.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
	FrequencyCustom = "custom"
)

// User represents a registered account in the Legacy Vault system.
// Accounts created through an OAuth provider have no password hash.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"full_name" json:"full_name"`
	Mobile         string             `bson:"mobile" json:"mobile"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password,omitempty" json:"-"`
	Role           string             `bson:"role" json:"role"`
	Status         string             `bson:"status" json:"status"`
	WellBeing      WellBeingSettings  `bson:"well_being" json:"well_being"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// WellBeingSettings is embedded on the User document. Configured is false
// until the user saves settings for the first time; unconfigured users are
// never considered for escalation.
type WellBeingSettings struct {
	Configured        bool      `bson:"configured" json:"configured"`
	Active            bool      `bson:"active" json:"active"`
	Frequency         string    `bson:"frequency,omitempty" json:"frequency,omitempty"`
	CustomDays        int       `bson:"custom_days,omitempty" json:"custom_days,omitempty"`
	AlertTime         string    `bson:"alert_time,omitempty" json:"alert_time,omitempty"`
	SMSEnabled        bool      `bson:"sms_enabled" json:"sms_enabled"`
	EmailEnabled      bool      `bson:"email_enabled" json:"email_enabled"`
	MaxMissedAlerts   int       `bson:"max_missed_alerts,omitempty" json:"max_missed_alerts,omitempty"`
	EscalationEnabled bool      `bson:"escalation_enabled" json:"escalation_enabled"`
	MissedCount       int       `bson:"missed_count" json:"missed_count"`
	LastCheckIn       time.Time `bson:"last_check_in,omitempty" json:"last_check_in,omitempty"`
	LastAlertSent     time.Time `bson:"last_alert_sent,omitempty" json:"last_alert_sent,omitempty"`
}

type PublicUser struct {
	ID       primitive.ObjectID `json:"id"`
	FullName string             `json:"full_name"`
	Email    string             `json:"email"`
	Mobile   string             `json:"mobile"`
	Status   string             `json:"status"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Mobile:   u.Mobile,
		Status:   u.Status,
	}
}
