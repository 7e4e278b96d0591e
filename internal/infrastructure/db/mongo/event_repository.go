package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

const eventsCollection = "events"

// EventRepository stores property calendar entries.
type EventRepository struct {
	store
}

func NewEventRepository(provider DatabaseProvider) *EventRepository {
	return &EventRepository{store{provider: provider, name: eventsCollection}}
}

type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Property    string             `bson:"property"`
	Title       string             `bson:"title"`
	Date        string             `bson:"date"`
	Location    string             `bson:"location,omitempty"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty"`
}

func (d eventDocument) toDomain() domain.Event {
	return domain.Event{
		ID:          d.ID.Hex(),
		Property:    d.Property,
		Title:       d.Title,
		Date:        d.Date,
		Location:    d.Location,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// List returns the property's events in date order.
func (r *EventRepository) List(ctx context.Context, property string) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := findAll[eventDocument](ctx, coll, bson.M{"property": property}, "list events",
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Event, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[eventDocument](ctx, coll, bson.M{"_id": oid}, "find event")
	if err != nil {
		return nil, err
	}
	e := doc.toDomain()
	return &e, nil
}

func (r *EventRepository) Insert(ctx context.Context, e *domain.Event) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, eventDocument{
		Property:    e.Property,
		Title:       e.Title,
		Date:        e.Date,
		Location:    e.Location,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	})
	if err != nil {
		return "", unavailable("insert event", err)
	}
	return insertedID(res), nil
}

func (r *EventRepository) Update(ctx context.Context, id, property string, fields ports.EventFields, at time.Time) error {
	filter, err := ownedFilter(id, property)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	set := bson.M{"updatedAt": at}
	setIf(set, "title", fields.Title)
	setIf(set, "date", fields.Date)
	setIf(set, "location", fields.Location)
	setIf(set, "description", fields.Description)
	return updateOwned(ctx, coll, filter, bson.M{"$set": set}, "update event")
}

func (r *EventRepository) Delete(ctx context.Context, id, property string) error {
	filter, err := ownedFilter(id, property)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	return deleteOwned(ctx, coll, filter, "delete event")
}
