package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

type stubRegistrationRepo struct {
	regs   map[string]*domain.Registration
	nextID int
}

func newStubRegistrationRepo() *stubRegistrationRepo {
	return &stubRegistrationRepo{regs: make(map[string]*domain.Registration)}
}

func (r *stubRegistrationRepo) Create(_ context.Context, reg *domain.Registration) (*domain.Registration, error) {
	for _, existing := range r.regs {
		if existing.EventID == reg.EventID && existing.UserID == reg.UserID {
			return nil, domain.ErrAlreadyRegistered
		}
	}
	r.nextID++
	copy := *reg
	copy.ID = "reg_" + strconv.Itoa(r.nextID)
	stored := copy
	r.regs[copy.ID] = &stored
	return &copy, nil
}

func (r *stubRegistrationRepo) FindByID(_ context.Context, id string) (*domain.Registration, error) {
	reg, ok := r.regs[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	copy := *reg
	return &copy, nil
}

func (r *stubRegistrationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Registration, error) {
	var out []*domain.Registration
	for _, reg := range r.regs {
		if reg.UserID == userID {
			copy := *reg
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubRegistrationRepo) ListAll(_ context.Context) ([]*domain.Registration, error) {
	var out []*domain.Registration
	for _, reg := range r.regs {
		copy := *reg
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubRegistrationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.regs[id]; !ok {
		return domain.ErrRegistrationNotFound
	}
	delete(r.regs, id)
	return nil
}

func newTestRegistrationService() (ports.RegistrationService, *stubRegistrationRepo, *stubEventRepo) {
	regRepo := newStubRegistrationRepo()
	eventRepo := newStubEventRepo()
	return NewRegistrationService(regRepo, eventRepo, zerolog.Nop()), regRepo, eventRepo
}

func seedEvent(t *testing.T, eventRepo *stubEventRepo) *domain.Event {
	t.Helper()
	event, err := eventRepo.Create(context.Background(), &domain.Event{
		Title:       "Go Meetup",
		Category:    "tech",
		Date:        "2026-10-01",
		OrganizerID: "org_1",
		Status:      domain.StatusApproved,
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, _, eventRepo := newTestRegistrationService()
	event := seedEvent(t, eventRepo)

	reg, err := svc.Register(context.Background(), event.ID, "user_1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if reg.ID == "" || reg.EventID != event.ID || reg.UserID != "user_1" {
		t.Fatalf("unexpected registration: %+v", reg)
	}
}

func TestRegistrationService_Register_UnknownEvent(t *testing.T) {
	svc, _, _ := newTestRegistrationService()

	if _, err := svc.Register(context.Background(), "missing", "user_1"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestRegistrationService_Register_Duplicate(t *testing.T) {
	svc, _, eventRepo := newTestRegistrationService()
	event := seedEvent(t, eventRepo)

	if _, err := svc.Register(context.Background(), event.ID, "user_1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), event.ID, "user_1"); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegistrationService_Cancel_OwnershipEnforced(t *testing.T) {
	svc, regRepo, eventRepo := newTestRegistrationService()
	event := seedEvent(t, eventRepo)

	reg, _ := svc.Register(context.Background(), event.ID, "user_1")

	other := &domain.User{ID: "user_2", Role: domain.RoleAttendee}
	if err := svc.Cancel(context.Background(), reg.ID, other); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	owner := &domain.User{ID: "user_1", Role: domain.RoleAttendee}
	if err := svc.Cancel(context.Background(), reg.ID, owner); err != nil {
		t.Fatalf("owner cancel failed: %v", err)
	}
	if len(regRepo.regs) != 0 {
		t.Fatalf("expected registration removed")
	}
}

func TestRegistrationService_Cancel_AdminOverride(t *testing.T) {
	svc, _, eventRepo := newTestRegistrationService()
	event := seedEvent(t, eventRepo)

	reg, _ := svc.Register(context.Background(), event.ID, "user_1")

	admin := &domain.User{ID: "admin_1", Role: domain.RoleAdmin}
	if err := svc.Cancel(context.Background(), reg.ID, admin); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
}

func TestRegistrationService_ListMine(t *testing.T) {
	svc, _, eventRepo := newTestRegistrationService()
	event := seedEvent(t, eventRepo)
	second := seedEventWithTitle(t, eventRepo, "Another")

	_, _ = svc.Register(context.Background(), event.ID, "user_1")
	_, _ = svc.Register(context.Background(), second.ID, "user_1")
	_, _ = svc.Register(context.Background(), event.ID, "user_2")

	mine, err := svc.ListMine(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(mine))
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 registrations, got %d", len(all))
	}
}

func seedEventWithTitle(t *testing.T, eventRepo *stubEventRepo, title string) *domain.Event {
	t.Helper()
	event, err := eventRepo.Create(context.Background(), &domain.Event{
		Title:       title,
		Category:    "tech",
		Date:        "2026-10-01",
		OrganizerID: "org_1",
		Status:      domain.StatusApproved,
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}
