package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminAction status values.
const (
	ActionPending   = "pending"
	ActionCompleted = "completed"
	ActionCancelled = "cancelled"
)

// Well-known admin action types. Free-form types are also accepted.
const (
	ActionDeathVerification = "death_verification"
	ActionAccountSuspension = "account_suspension"
	ActionWellBeingFollowUp = "well_being_follow_up"
)

// AdminAction is an audit record of an administrative decision about a user.
// Actions are never deleted; resolving one moves its status from pending to
// completed or cancelled.
type AdminAction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TargetID    primitive.ObjectID `bson:"target_id" json:"target_id"`
	AdminEmail  string             `bson:"admin_email" json:"admin_email"`
	ActionType  string             `bson:"action_type" json:"action_type"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
