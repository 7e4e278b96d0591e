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

const contactsCollection = "contacts"

type ContactRepository struct {
	store
}

func NewContactRepository(provider DatabaseProvider) *ContactRepository {
	return &ContactRepository{store{provider: provider, name: contactsCollection}}
}

type contactDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Property     string             `bson:"property"`
	Type         domain.ContactType `bson:"type"`
	Name         string             `bson:"name"`
	Organization string             `bson:"organization,omitempty"`
	Email        string             `bson:"email,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	Notes        string             `bson:"notes,omitempty"`
	Visits       []domain.Visit     `bson:"visits"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty"`
}

func (d contactDocument) toDomain() domain.Contact {
	visits := d.Visits
	if visits == nil {
		visits = []domain.Visit{}
	}
	return domain.Contact{
		ID:           d.ID.Hex(),
		Property:     d.Property,
		Type:         d.Type,
		Name:         d.Name,
		Organization: d.Organization,
		Email:        d.Email,
		Phone:        d.Phone,
		Notes:        d.Notes,
		Visits:       visits,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *ContactRepository) List(ctx context.Context, property string, ctype domain.ContactType) ([]domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"property": property}
	if ctype != "" {
		filter["type"] = ctype
	}
	docs, err := findAll[contactDocument](ctx, coll, filter, "list contacts",
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Contact, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
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
	doc, err := findOne[contactDocument](ctx, coll, bson.M{"_id": oid}, "find contact")
	if err != nil {
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *ContactRepository) Insert(ctx context.Context, c *domain.Contact) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, contactDocument{
		Property:     c.Property,
		Type:         c.Type,
		Name:         c.Name,
		Organization: c.Organization,
		Email:        c.Email,
		Phone:        c.Phone,
		Notes:        c.Notes,
		Visits:       c.Visits,
		CreatedAt:    c.CreatedAt,
	})
	if err != nil {
		return "", unavailable("insert contact", err)
	}
	return insertedID(res), nil
}

func (r *ContactRepository) Update(ctx context.Context, id, property string, fields ports.ContactFields, at time.Time) error {
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
	setIf(set, "name", fields.Name)
	setIf(set, "organization", fields.Organization)
	setIf(set, "email", fields.Email)
	setIf(set, "phone", fields.Phone)
	setIf(set, "notes", fields.Notes)
	return updateOwned(ctx, coll, filter, bson.M{"$set": set}, "update contact")
}

func (r *ContactRepository) PushVisit(ctx context.Context, id, property string, visit domain.Visit, at time.Time) error {
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
	update := bson.M{
		"$push": bson.M{"visits": visit},
		"$set":  bson.M{"updatedAt": at},
	}
	return updateOwned(ctx, coll, filter, update, "push contact visit")
}

func (r *ContactRepository) Delete(ctx context.Context, id, property string) error {
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
	return deleteOwned(ctx, coll, filter, "delete contact")
}
