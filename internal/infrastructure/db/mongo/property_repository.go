package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
)

const propertiesCollection = "properties"

type PropertyRepository struct {
	store
}

func NewPropertyRepository(provider DatabaseProvider) *PropertyRepository {
	return &PropertyRepository{store{provider: provider, name: propertiesCollection}}
}

type propertyDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := findAll[propertyDocument](ctx, coll, bson.M{}, "list properties",
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Property, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Property{ID: d.ID.Hex(), Name: d.Name})
	}
	return out, nil
}

func (r *PropertyRepository) Insert(ctx context.Context, name string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, propertyDocument{Name: name})
	if err != nil {
		return nil, unavailable("insert property", err)
	}
	return &domain.Property{ID: insertedID(res), Name: name}, nil
}
