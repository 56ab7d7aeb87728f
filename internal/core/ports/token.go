package ports

import (
	"context"
	"time"
)

// TokenClaims is the decoded content of a verified session token. It carries
// identity only — authorization always re-resolves the user record, so role
// changes and blocks take effect without waiting for token expiry.
type TokenClaims struct {
	Subject   string
	TokenID   string
	ExpiresAt time.Time
}

// TokenIssuer mints signed session tokens for a subject identity.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// TokenVerifier checks a presented token's signature and expiry.
// Any malformed, tampered or expired token yields domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenDenylist tracks revoked token IDs until their natural expiry.
// Verification stays stateless; the denylist only exists so logout can cut a
// token's life short.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
