package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// ListEventsFilter carries the query parameters for listing events.
type ListEventsFilter struct {
	Status      string // optional: filter by moderation status
	OrganizerID string // optional: scope to a single organizer
}

// EventUpdate holds the mutable event fields; nil means "leave unchanged".
// OrganizerID and Status are deliberately absent — ownership never moves and
// moderation goes through SetStatus.
type EventUpdate struct {
	Title       *string
	Description *string
	Location    *string
	Category    *string
	Date        *string
	Price       *float64
	Image       *string
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	// FindDuplicate looks up an event with the same dedup key
	// (title, date, category, organizer). Returns ErrEventNotFound when none.
	FindDuplicate(ctx context.Context, title, date, category, organizerID string) (*domain.Event, error)
	List(ctx context.Context, filter ListEventsFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*domain.Event, error)
	SetStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
