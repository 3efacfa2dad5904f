package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood represents a single mood entry: one emoji plus an optional note,
// owned by exactly one user.
type Mood struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Emoji     string             `bson:"emoji" json:"emoji"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
}
