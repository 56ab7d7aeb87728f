package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// CreateEventInput is the DTO passed from the transport layer to EventService.
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Category    string
	Date        string
	Price       float64
	Image       string
}

// EventService defines use-case operations for events. Ownership checks live
// here; role gates live at the route.
type EventService interface {
	Create(ctx context.Context, organizerID string, in CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, status string) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	Update(ctx context.Context, id, organizerID string, upd EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id, organizerID string) error
	Review(ctx context.Context, id, reviewerID string, status domain.EventStatus) (*domain.Event, error)
}
