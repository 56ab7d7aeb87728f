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
	"github.com/eventhub/event-platform/internal/core/ports"
)

const eventsCollection = "events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

type mongoEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Category    string             `bson:"category"`
	Date        string             `bson:"date"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	OrganizerID string             `bson:"organizer_id"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	doc := mongoEvent{
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Category:    e.Category,
		Date:        e.Date,
		Price:       e.Price,
		Image:       e.Image,
		OrganizerID: e.OrganizerID,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt.UTC(),
		UpdatedAt:   e.UpdatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEvent
		}
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *e
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *EventRepository) FindDuplicate(ctx context.Context, title, date, category, organizerID string) (*domain.Event, error) {
	return r.findOne(ctx, bson.M{
		"title":        title,
		"date":         date,
		"category":     category,
		"organizer_id": organizerID,
	})
}

func (r *EventRepository) List(ctx context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.OrganizerID != "" {
		query["organizer_id"] = filter.OrganizerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.Event
	for cur.Next(ctx) {
		var me mongoEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, upd ports.EventUpdate) (*domain.Event, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIfPresent(set, "title", upd.Title)
	setIfPresent(set, "description", upd.Description)
	setIfPresent(set, "location", upd.Location)
	setIfPresent(set, "category", upd.Category)
	setIfPresent(set, "date", upd.Date)
	setIfPresent(set, "image", upd.Image)
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	return r.updateOne(ctx, id, set)
}

func (r *EventRepository) SetStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	return r.updateOne(ctx, id, bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) findOne(ctx context.Context, filter bson.M) (*domain.Event, error) {
	var me mongoEvent
	if err := r.coll.FindOne(ctx, filter).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return me.toDomain(), nil
}

func (r *EventRepository) updateOne(ctx context.Context, id string, set bson.M) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var me mongoEvent
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&me)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEvent
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return me.toDomain(), nil
}

func setIfPresent(set bson.M, key string, val *string) {
	if val != nil {
		set[key] = *val
	}
}

func (me mongoEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:          me.ID.Hex(),
		Title:       me.Title,
		Description: me.Description,
		Location:    me.Location,
		Category:    me.Category,
		Date:        me.Date,
		Price:       me.Price,
		Image:       me.Image,
		OrganizerID: me.OrganizerID,
		Status:      domain.EventStatus(me.Status),
		CreatedAt:   me.CreatedAt.UTC(),
		UpdatedAt:   me.UpdatedAt.UTC(),
	}
}
