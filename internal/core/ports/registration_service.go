package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// RegistrationService defines use-case operations for event registrations.
type RegistrationService interface {
	Register(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	ListMine(ctx context.Context, userID string) ([]*domain.Registration, error)
	ListAll(ctx context.Context) ([]*domain.Registration, error)
	// Cancel removes a registration. Only the owning user may cancel it,
	// admins excepted.
	Cancel(ctx context.Context, id string, actor *domain.User) error
}
