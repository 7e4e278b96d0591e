package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
)

// store binds a repository to one collection of the shared handle.
type store struct {
	provider DatabaseProvider
	name     string
}

func (s store) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := s.provider.Database(ctx)
	if err != nil {
		return nil, unavailable("open "+s.name, err)
	}
	return db.Collection(s.name), nil
}

// unavailable marks a driver failure as the retryable storage class.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

// objectID parses a hex id. An id that cannot exist is reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrResourceNotFound
	}
	return oid, nil
}

// ownedFilter addresses a record by id within its property.
func ownedFilter(id, property string) (bson.M, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid, "property": property}, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, op string) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, unavailable(op, err)
	}
	return &doc, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, op string, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, unavailable(op, err)
	}
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, unavailable(op, err)
	}
	return docs, nil
}

func insertedID(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}

// setIf adds v to a $set document when it is non-nil.
func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}

// updateOwned applies update to the record and reports a miss as not found.
func updateOwned(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, op string) error {
	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return unavailable(op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func deleteOwned(ctx context.Context, coll *mongo.Collection, filter bson.M, op string) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return unavailable(op, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}
