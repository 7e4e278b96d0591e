package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
)

const socialPostsCollection = "social_posts"

type SocialPostRepository struct {
	store
}

func NewSocialPostRepository(provider DatabaseProvider) *SocialPostRepository {
	return &SocialPostRepository{store{provider: provider, name: socialPostsCollection}}
}

type socialPostDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Property  string             `bson:"property"`
	Platform  string             `bson:"platform"`
	ImageURL  string             `bson:"imageUrl"`
	Timestamp time.Time          `bson:"timestamp"`
	Permalink string             `bson:"permalink"`
	Caption   string             `bson:"caption"`
	CreatedBy string             `bson:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d socialPostDocument) toDomain() domain.SocialPost {
	return domain.SocialPost{
		ID:        d.ID.Hex(),
		Property:  d.Property,
		Platform:  d.Platform,
		ImageURL:  d.ImageURL,
		Timestamp: d.Timestamp,
		Permalink: d.Permalink,
		Caption:   d.Caption,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
	}
}

func (r *SocialPostRepository) List(ctx context.Context, property, platform string, limit int) ([]domain.SocialPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"property": property}
	if platform != "" {
		filter["platform"] = platform
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	docs, err := findAll[socialPostDocument](ctx, coll, filter, "list social posts", opts)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SocialPost, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *SocialPostRepository) FindByID(ctx context.Context, id string) (*domain.SocialPost, error) {
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
	doc, err := findOne[socialPostDocument](ctx, coll, bson.M{"_id": oid}, "find social post")
	if err != nil {
		return nil, err
	}
	p := doc.toDomain()
	return &p, nil
}

func (r *SocialPostRepository) Insert(ctx context.Context, p *domain.SocialPost) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, socialPostDocument{
		Property:  p.Property,
		Platform:  p.Platform,
		ImageURL:  p.ImageURL,
		Timestamp: p.Timestamp,
		Permalink: p.Permalink,
		Caption:   p.Caption,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return "", unavailable("insert social post", err)
	}
	return insertedID(res), nil
}

func (r *SocialPostRepository) Delete(ctx context.Context, id, property string) error {
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
	return deleteOwned(ctx, coll, filter, "delete social post")
}
