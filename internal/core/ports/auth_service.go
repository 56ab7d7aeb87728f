package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, userID string, claims *TokenClaims) error
	UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error)
	// ToggleBlock flips the target user's blocked flag. Admin only; the
	// route gate enforces the role, actorID is recorded for the audit trail.
	ToggleBlock(ctx context.Context, actorID, userID string) (*domain.User, error)
}
