package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mmp/property-portal/internal/core/domain"
)

const filesCollection = "files"

// FileRepository stores blobs inline; documents stay under the 16 MB limit
// because uploads are capped below it.
type FileRepository struct {
	store
}

func NewFileRepository(provider DatabaseProvider) *FileRepository {
	return &FileRepository{store{provider: provider, name: filesCollection}}
}

type fileDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Property    string             `bson:"property"`
	Filename    string             `bson:"filename"`
	ContentType string             `bson:"contentType"`
	Size        int64              `bson:"size"`
	Data        []byte             `bson:"data"`
	Uploader    string             `bson:"uploader"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (r *FileRepository) Insert(ctx context.Context, f *domain.StoredFile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, fileDocument{
		Property:    f.Property,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        f.Size,
		Data:        f.Data,
		Uploader:    f.Uploader,
		CreatedAt:   f.CreatedAt,
	})
	if err != nil {
		return "", unavailable("insert file", err)
	}
	return insertedID(res), nil
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*domain.StoredFile, error) {
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
	doc, err := findOne[fileDocument](ctx, coll, bson.M{"_id": oid}, "find file")
	if err != nil {
		return nil, err
	}
	return &domain.StoredFile{
		ID:          doc.ID.Hex(),
		Property:    doc.Property,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		Data:        doc.Data,
		Uploader:    doc.Uploader,
		CreatedAt:   doc.CreatedAt,
	}, nil
}
