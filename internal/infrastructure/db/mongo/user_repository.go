package mongo

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	store

	// indexed is set once the unique username index is known to exist.
	indexed atomic.Bool
}

func NewUserRepository(provider DatabaseProvider) *UserRepository {
	return &UserRepository{store: store{provider: provider, name: usersCollection}}
}

type userDocument struct {
	Username     string               `bson:"username"`
	PasswordHash string               `bson:"passwordHash,omitempty"`
	Role         domain.Role          `bson:"role"`
	Properties   domain.PropertyGrant `bson:"properties"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Properties:   d.Properties,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// EnsureIndexes creates the unique username index. Create calls it until it
// succeeds once, so a store that was down at startup still gets the index
// before the first insert.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return unavailable("create user indexes", err)
	}
	r.indexed.Store(true)
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var doc userDocument
	if err := coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, unavailable("find user", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if !r.indexed.Load() {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, userDocument{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Properties:   user.Properties,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return unavailable("insert user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, username string, fields ports.UserFields) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	setIf(set, "passwordHash", fields.PasswordHash)
	setIf(set, "role", fields.Role)
	setIf(set, "properties", fields.Properties)

	res, err := coll.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": set})
	if err != nil {
		return unavailable("update user", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List returns every user without password hashes.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetProjection(bson.M{"passwordHash": 0}).
		SetSort(bson.D{{Key: "username", Value: 1}})
	docs, err := findAll[userDocument](ctx, coll, bson.M{}, "list users", opts)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return unavailable("delete user", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}
	n, err := coll.CountDocuments(ctx, bson.M{"role": domain.RoleAdmin}, options.Count().SetLimit(1))
	if err != nil {
		return false, unavailable("count admins", err)
	}
	return n > 0, nil
}
