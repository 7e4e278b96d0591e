package service

import (
	"context"
	"strings"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

type OrderService struct {
	repo ports.OrderRepository
	gate *Gate
	now  func() time.Time
}

func NewOrderService(repo ports.OrderRepository, gate *Gate) *OrderService {
	return &OrderService{repo: repo, gate: gate, now: time.Now}
}

// List ignores an unknown status filter rather than failing.
func (s *OrderService) List(ctx context.Context, claims *domain.Claims, property, status string) ([]domain.Order, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	filter := domain.OrderStatus(status)
	if !filter.Valid() {
		filter = ""
	}
	return s.repo.List(ctx, property, filter)
}

func (s *OrderService) Create(ctx context.Context, claims *domain.Claims, in ports.OrderInput) (string, error) {
	if err := requireProperty(in.Property); err != nil {
		return "", err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: in.Property}); err != nil {
		return "", err
	}
	title, items := strings.TrimSpace(in.Title), strings.TrimSpace(in.Items)
	if title == "" && items == "" {
		return "", domain.InvalidInput("title or items is required")
	}

	now := s.now().UTC()
	return s.repo.Insert(ctx, &domain.Order{
		Property:    in.Property,
		Title:       title,
		Items:       items,
		NeededBy:    in.NeededBy,
		Vendor:      strings.TrimSpace(in.Vendor),
		Cost:        in.Cost,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      domain.OrderSubmitted,
		SubmittedAt: now,
		CreatedBy:   claims.Subject,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Update applies the whitelisted fields. A status outside the workflow is
// ignored; moving to Approved stamps approvalAt.
func (s *OrderService) Update(ctx context.Context, claims *domain.Claims, id string, in ports.OrderUpdateInput) error {
	if err := requireIDAndProperty(id, in.Property); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.CheckStored(ctx, claims, in.Property, existing.Property, false); err != nil {
		return err
	}

	now := s.now().UTC()
	fields := ports.OrderFields{
		Title:          in.Title,
		Items:          in.Items,
		NeededBy:       in.NeededBy,
		Vendor:         in.Vendor,
		Cost:           in.Cost,
		Notes:          in.Notes,
		TrackingNumber: in.TrackingNumber,
	}
	if in.Status != nil {
		if status := domain.OrderStatus(*in.Status); status.Valid() {
			fields.Status = &status
			if status == domain.OrderApproved {
				fields.ApprovalAt = &now
			}
		}
	}
	return s.repo.Update(ctx, id, existing.Property, fields, now)
}

func (s *OrderService) Delete(ctx context.Context, claims *domain.Claims, id, property string) error {
	if err := requireIDAndProperty(id, property); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.CheckStored(ctx, claims, property, existing.Property, false); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, existing.Property)
}
