package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodEntry is an append-only wellness log entry. Entries are immutable
// after creation and queried most-recent-first.
type MoodEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Mood      string             `bson:"mood" json:"mood"`
	Intensity int                `bson:"intensity" json:"intensity"` // 1..10
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
