package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

const auditCollection = "audit_events"

// AuditRepository appends security-relevant actions to the audit_events
// collection. Callers treat insert failures as non-fatal.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRecorder {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Record(ctx context.Context, ev *domain.AuditEvent) error {
	doc := bson.M{
		"action":      ev.Action,
		"actor_id":    ev.ActorID,
		"at":          ev.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if ev.SubjectID != "" {
		doc["subject_id"] = ev.SubjectID
	}
	if ev.Detail != "" {
		doc["detail"] = ev.Detail
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
