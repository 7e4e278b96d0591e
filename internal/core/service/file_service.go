package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// DefaultMaxUploadBytes caps a single stored blob.
const DefaultMaxUploadBytes = 15 << 20

const defaultContentType = "application/octet-stream"

// FileService stores opaque blobs keyed by their owning property.
type FileService struct {
	repo     ports.FileRepository
	gate     *Gate
	maxBytes int64
	now      func() time.Time
}

func NewFileService(repo ports.FileRepository, gate *Gate, maxBytes int64) *FileService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &FileService{repo: repo, gate: gate, maxBytes: maxBytes, now: time.Now}
}

// MaxBytes is the largest accepted upload.
func (s *FileService) MaxBytes() int64 { return s.maxBytes }

func (s *FileService) Upload(ctx context.Context, claims *domain.Claims, in ports.UploadInput) (string, error) {
	if err := requireProperty(in.Property); err != nil {
		return "", err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: in.Property}); err != nil {
		return "", err
	}
	if in.Body == nil {
		return "", domain.InvalidInput("empty body")
	}
	// Read one byte past the cap so an oversized body is detected, not truncated.
	data, err := io.ReadAll(io.LimitReader(in.Body, s.maxBytes+1))
	if err != nil {
		return "", domain.InvalidInput("unreadable body")
	}
	if len(data) == 0 {
		return "", domain.InvalidInput("empty body")
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: max %d bytes", domain.ErrPayloadTooLarge, s.maxBytes)
	}

	filename := in.Filename
	if filename == "" {
		filename = "upload_" + uuid.NewString()
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return s.repo.Insert(ctx, &domain.StoredFile{
		Property:    in.Property,
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
		Uploader:    claims.Subject,
		CreatedAt:   s.now().UTC(),
	})
}

// Download authorizes against the property the file is stored under.
func (s *FileService) Download(ctx context.Context, claims *domain.Claims, id string) (*domain.StoredFile, error) {
	if claims == nil {
		return nil, domain.ErrUnauthenticated
	}
	if id == "" {
		return nil, domain.InvalidInput("id is required")
	}
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: file.Property}); err != nil {
		return nil, err
	}
	return file, nil
}
