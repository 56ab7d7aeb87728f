package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventhub/event-platform/internal/core/domain"
)

const registrationsCollection = "registrations"

// RegistrationRepository implements ports.RegistrationRepository using MongoDB.
type RegistrationRepository struct {
	coll *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{coll: db.Collection(registrationsCollection)}
}

type mongoRegistration struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EventID   string             `bson:"event_id"`
	UserID    string             `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	doc := mongoRegistration{
		EventID:   reg.EventID,
		UserID:    reg.UserID,
		CreatedAt: reg.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	created := *reg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*domain.Registration, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRegistrationNotFound
	}

	var mr mongoRegistration
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *RegistrationRepository) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	return r.list(ctx, bson.M{})
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRegistrationNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepository) list(ctx context.Context, filter bson.M) ([]*domain.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var regs []*domain.Registration
	for cur.Next(ctx) {
		var mr mongoRegistration
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode registration: %w", err)
		}
		regs = append(regs, mr.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (mr mongoRegistration) toDomain() *domain.Registration {
	return &domain.Registration{
		ID:        mr.ID.Hex(),
		EventID:   mr.EventID,
		UserID:    mr.UserID,
		CreatedAt: mr.CreatedAt.UTC(),
	}
}
