package domain

import "time"

// Audit actions recorded by the services. The trail is append-only and
// best-effort: a failed insert never fails the request that produced it.
const (
	AuditUserRegistered = "user_registered"
	AuditUserLogin      = "user_login"
	AuditUserLogout     = "user_logout"
	AuditUserBlocked    = "user_blocked"
	AuditUserUnblocked  = "user_unblocked"
	AuditEventReviewed  = "event_reviewed"
)

// AuditEvent records a single security-relevant action.
type AuditEvent struct {
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	SubjectID string    `json:"subject_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}
