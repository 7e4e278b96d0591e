package service

import (
	"context"
	"strings"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 200
)

// SocialFeedService manages curated social posts. Deletion is admin-only.
type SocialFeedService struct {
	repo ports.SocialPostRepository
	gate *Gate
	now  func() time.Time
}

func NewSocialFeedService(repo ports.SocialPostRepository, gate *Gate) *SocialFeedService {
	return &SocialFeedService{repo: repo, gate: gate, now: time.Now}
}

// List clamps limit to [1, 200]; zero selects the default of 50.
func (s *SocialFeedService) List(ctx context.Context, claims *domain.Claims, property, platform string, limit int) ([]domain.SocialPost, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, property, strings.ToLower(platform), clampFeedLimit(limit))
}

func (s *SocialFeedService) Create(ctx context.Context, claims *domain.Claims, in ports.SocialPostInput) (string, error) {
	if in.Property == "" || in.Platform == "" || in.ImageURL == "" || in.Timestamp.IsZero() {
		return "", domain.InvalidInput("property, platform, imageUrl and timestamp are required")
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: in.Property}); err != nil {
		return "", err
	}
	return s.repo.Insert(ctx, &domain.SocialPost{
		Property:  in.Property,
		Platform:  strings.ToLower(in.Platform),
		ImageURL:  in.ImageURL,
		Timestamp: in.Timestamp.UTC(),
		Permalink: in.Permalink,
		Caption:   in.Caption,
		CreatedBy: claims.Subject,
		CreatedAt: s.now().UTC(),
	})
}

func (s *SocialFeedService) Delete(ctx context.Context, claims *domain.Claims, id, property string) error {
	if err := s.gate.Check(ctx, claims, adminOnly); err != nil {
		return err
	}
	if err := requireIDAndProperty(id, property); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.CheckStored(ctx, claims, property, existing.Property, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, existing.Property)
}

func clampFeedLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultFeedLimit
	case limit < 1:
		return 1
	case limit > maxFeedLimit:
		return maxFeedLimit
	}
	return limit
}
