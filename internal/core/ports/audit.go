package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// AuditRecorder persists security-relevant actions to the audit trail.
// Callers treat failures as non-fatal.
type AuditRecorder interface {
	Record(ctx context.Context, ev *domain.AuditEvent) error
}
