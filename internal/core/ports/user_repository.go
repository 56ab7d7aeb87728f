package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// UserRepository defines the interface for user persistence. The store owns
// email uniqueness; Create surfaces a duplicate as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateName is the only generic profile mutation; email, role and
	// password are never touched through this path.
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	SetBlocked(ctx context.Context, id string, blocked bool) (*domain.User, error)
}
