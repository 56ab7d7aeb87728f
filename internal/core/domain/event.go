package domain

import (
	"errors"
	"time"
)

// EventStatus represents the moderation state of an event.
type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"
	StatusRejected EventStatus = "rejected"
)

var ErrEventNotFound = errors.New("event not found")
var ErrDuplicateEvent = errors.New("event already exists")
var ErrInvalidEventStatus = errors.New("invalid event status")

// ReviewableStatus reports whether status is a valid outcome of an admin review.
// Reviews never move an event back to pending.
func ReviewableStatus(status EventStatus) bool {
	return status == StatusApproved || status == StatusRejected
}

// Event is the core aggregate. Two events with the same title, date and
// category belonging to the same organizer are considered duplicates.
type Event struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Location    string      `json:"location" bson:"location"`
	Category    string      `json:"category" bson:"category"`
	Date        string      `json:"date" bson:"date"`
	Price       float64     `json:"price" bson:"price"`
	Image       string      `json:"image,omitempty" bson:"image,omitempty"`
	OrganizerID string      `json:"organizer_id" bson:"organizer_id"`
	Status      EventStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}
