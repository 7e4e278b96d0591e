package service

import (
	"context"
	"strings"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// PropertyService lists tenants and lets admins create them.
type PropertyService struct {
	repo ports.PropertyRepository
	gate *Gate
}

func NewPropertyService(repo ports.PropertyRepository, gate *Gate) *PropertyService {
	return &PropertyService{repo: repo, gate: gate}
}

// List is property-agnostic: any authenticated user may see the catalogue.
func (s *PropertyService) List(ctx context.Context, claims *domain.Claims) ([]domain.Property, error) {
	if err := s.gate.Check(ctx, claims, domain.Access{}); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *PropertyService) Create(ctx context.Context, claims *domain.Claims, name string) (*domain.Property, error) {
	if err := s.gate.Check(ctx, claims, adminOnly); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.InvalidInput("name is required")
	}
	return s.repo.Insert(ctx, name)
}
