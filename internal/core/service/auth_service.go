package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

// AuthService implements registration, login, profile updates and the admin
// block toggle.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenIssuer
	denylist ports.TokenDenylist
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenIssuer,
	denylist ports.TokenDenylist,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, tokens: tokens, denylist: denylist, audit: audit, log: log}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidRegistration
	}
	if !domain.ValidSignupRole(role) {
		return nil, domain.ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, domain.AuditUserRegistered, created.ID, "", role)
	s.log.Info().Str("user_id", created.ID).Str("role", role).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	// bcrypt's comparator is constant-time and fails closed on a malformed
	// stored digest.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.recordAudit(ctx, domain.AuditUserLogin, user.ID, "", "")
	return token, user, nil
}

// Logout denylists the presented token until its natural expiry. Tokens with
// no expiry cannot be revoked individually; that combination never leaves the
// issuer, so it is treated as an invalid token here.
func (s *AuthService) Logout(ctx context.Context, userID string, claims *ports.TokenClaims) error {
	if claims == nil || claims.TokenID == "" || claims.ExpiresAt.IsZero() {
		return domain.ErrInvalidToken
	}

	if err := s.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return err
	}

	s.recordAudit(ctx, domain.AuditUserLogout, userID, "", "")
	return nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error) {
	if name == "" {
		return nil, domain.ErrInvalidRegistration
	}
	return s.users.UpdateName(ctx, userID, name)
}

func (s *AuthService) ToggleBlock(ctx context.Context, actorID, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.SetBlocked(ctx, userID, !user.IsBlocked)
	if err != nil {
		return nil, err
	}

	action := domain.AuditUserBlocked
	if !updated.IsBlocked {
		action = domain.AuditUserUnblocked
	}
	s.recordAudit(ctx, action, actorID, userID, "")
	s.log.Info().Str("actor_id", actorID).Str("user_id", userID).Bool("blocked", updated.IsBlocked).Msg("block toggled")
	return updated, nil
}

// recordAudit writes to the audit trail; failures are logged, never surfaced.
func (s *AuthService) recordAudit(ctx context.Context, action, actorID, subjectID, detail string) {
	ev := &domain.AuditEvent{
		Action:    action,
		ActorID:   actorID,
		SubjectID: subjectID,
		Detail:    detail,
		At:        time.Now().UTC(),
	}
	if err := s.audit.Record(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("failed to record audit event")
	}
}
