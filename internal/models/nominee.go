package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nominee is a beneficiary designated by a user. Each nominee belongs to
// exactly one user.
type Nominee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	Relationship string             `bson:"relationship" json:"relationship"`
	Mobile       string             `bson:"mobile" json:"mobile"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Verified     bool               `bson:"verified" json:"verified"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
