package domain

import (
	"errors"
	"time"
)

var ErrRegistrationNotFound = errors.New("registration not found")
var ErrAlreadyRegistered = errors.New("already registered for event")

// Registration links an attendee to an event. At most one per (event, user).
type Registration struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	EventID   string    `json:"event_id" bson:"event_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
