package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog category values.
const (
	CategoryUser     = "user"
	CategoryAdmin    = "admin"
	CategorySystem   = "system"
	CategorySecurity = "security"
)

// ActivityLog severity values.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// ActivityLog is an append-only audit trail entry.
type ActivityLog struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Category    string                 `bson:"category" json:"category"`
	Action      string                 `bson:"action" json:"action"`
	Description string                 `bson:"description,omitempty" json:"description,omitempty"`
	Severity    string                 `bson:"severity" json:"severity"`
	UserID      *primitive.ObjectID    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	AdminEmail  string                 `bson:"admin_email,omitempty" json:"admin_email,omitempty"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp   time.Time              `bson:"timestamp" json:"timestamp"`
}
