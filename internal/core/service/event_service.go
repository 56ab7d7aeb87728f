package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

type eventService struct {
	events ports.EventRepository
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(events ports.EventRepository, audit ports.AuditRecorder, log zerolog.Logger) ports.EventService {
	return &eventService{events: events, audit: audit, log: log}
}

// Create persists a new pending event after checking the organizer has no
// other event with the same title, date and category.
func (s *eventService) Create(ctx context.Context, organizerID string, in ports.CreateEventInput) (*domain.Event, error) {
	existing, err := s.events.FindDuplicate(ctx, in.Title, in.Date, in.Category, organizerID)
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		return nil, fmt.Errorf("create event: duplicate check: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEvent
	}

	now := time.Now().UTC()
	event := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		Date:        in.Date,
		Price:       in.Price,
		Image:       in.Image,
		OrganizerID: organizerID,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", created.ID).Str("organizer_id", organizerID).Str("category", in.Category).Msg("event created")
	return created, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, status string) ([]*domain.Event, error) {
	return s.events.List(ctx, ports.ListEventsFilter{Status: status})
}

func (s *eventService) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	return s.events.List(ctx, ports.ListEventsFilter{OrganizerID: organizerID})
}

// Update applies the given fields. Only the owning organizer may update.
func (s *eventService) Update(ctx context.Context, id, organizerID string, upd ports.EventUpdate) (*domain.Event, error) {
	if err := s.requireOwner(ctx, id, organizerID); err != nil {
		return nil, err
	}
	return s.events.Update(ctx, id, upd)
}

// Delete removes the event. Only the owning organizer may delete.
func (s *eventService) Delete(ctx context.Context, id, organizerID string) error {
	if err := s.requireOwner(ctx, id, organizerID); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}

// Review records an admin moderation decision: approved or rejected.
func (s *eventService) Review(ctx context.Context, id, reviewerID string, status domain.EventStatus) (*domain.Event, error) {
	if !domain.ReviewableStatus(status) {
		return nil, domain.ErrInvalidEventStatus
	}

	updated, err := s.events.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	ev := &domain.AuditEvent{
		Action:    domain.AuditEventReviewed,
		ActorID:   reviewerID,
		SubjectID: id,
		Detail:    string(status),
		At:        time.Now().UTC(),
	}
	if auditErr := s.audit.Record(ctx, ev); auditErr != nil {
		s.log.Warn().Err(auditErr).Str("event_id", id).Msg("failed to record audit event")
	}

	s.log.Info().Str("event_id", id).Str("reviewer_id", reviewerID).Str("status", string(status)).Msg("event reviewed")
	return updated, nil
}

func (s *eventService) requireOwner(ctx context.Context, id, organizerID string) error {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OrganizerID != organizerID {
		return domain.ErrForbidden
	}
	return nil
}
