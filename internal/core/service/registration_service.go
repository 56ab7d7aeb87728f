package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

type registrationService struct {
	registrations ports.RegistrationRepository
	events        ports.EventRepository
	log           zerolog.Logger
}

// NewRegistrationService returns a RegistrationService implementation.
func NewRegistrationService(
	registrations ports.RegistrationRepository,
	events ports.EventRepository,
	log zerolog.Logger,
) ports.RegistrationService {
	return &registrationService{registrations: registrations, events: events, log: log}
}

// Register signs the user up for an event. Any authenticated user may
// register; duplicates are rejected by the store's unique constraint.
func (s *registrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("register for event: %w", err)
	}

	reg := &domain.Registration{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.registrations.Create(ctx, reg)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", eventID).Str("user_id", userID).Msg("registration created")
	return created, nil
}

func (s *registrationService) ListMine(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return s.registrations.ListByUser(ctx, userID)
}

func (s *registrationService) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	return s.registrations.ListAll(ctx)
}

// Cancel removes a registration owned by the actor. Admins may cancel any.
func (s *registrationService) Cancel(ctx context.Context, id string, actor *domain.User) error {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleAdmin && reg.UserID != actor.ID {
		return domain.ErrForbidden
	}
	return s.registrations.Delete(ctx, id)
}
