package service

import (
	"context"
	"errors"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

type BudgetService struct {
	repo ports.BudgetRepository
	gate *Gate
}

func NewBudgetService(repo ports.BudgetRepository, gate *Gate) *BudgetService {
	return &BudgetService{repo: repo, gate: gate}
}

// Get returns the month map; a property without a budget yields an empty map.
func (s *BudgetService) Get(ctx context.Context, claims *domain.Claims, property string) (map[string]float64, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	b, err := s.repo.Get(ctx, property)
	if errors.Is(err, domain.ErrResourceNotFound) {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, err
	}
	if b.Months == nil {
		b.Months = map[string]float64{}
	}
	return b.Months, nil
}

func (s *BudgetService) Put(ctx context.Context, claims *domain.Claims, property string, months map[string]float64) error {
	if property == "" || months == nil {
		return domain.InvalidInput("property and months are required")
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, &domain.Budget{Property: property, Months: months})
}

func requireProperty(property string) error {
	if property == "" {
		return domain.InvalidInput("property is required")
	}
	return nil
}

func requireIDAndProperty(id, property string) error {
	if id == "" || property == "" {
		return domain.InvalidInput("id and property are required")
	}
	return nil
}
