package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// RegistrationRepository defines persistence for event registrations. The
// store owns the one-per-(event,user) constraint; Create surfaces a duplicate
// as domain.ErrAlreadyRegistered.
type RegistrationRepository interface {
	Create(ctx context.Context, r *domain.Registration) (*domain.Registration, error)
	FindByID(ctx context.Context, id string) (*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
	ListAll(ctx context.Context) ([]*domain.Registration, error)
	Delete(ctx context.Context, id string) error
}
