package service

import (
	"context"
	"strings"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

type EventService struct {
	repo ports.EventRepository
	gate *Gate
	now  func() time.Time
}

func NewEventService(repo ports.EventRepository, gate *Gate) *EventService {
	return &EventService{repo: repo, gate: gate, now: time.Now}
}

func (s *EventService) List(ctx context.Context, claims *domain.Claims, property string) ([]domain.Event, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, property)
}

func (s *EventService) Create(ctx context.Context, claims *domain.Claims, in ports.EventInput) (string, error) {
	if err := requireProperty(in.Property); err != nil {
		return "", err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: in.Property}); err != nil {
		return "", err
	}
	return s.repo.Insert(ctx, &domain.Event{
		Property:    in.Property,
		Title:       strings.TrimSpace(in.Title),
		Date:        in.Date,
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   s.now().UTC(),
	})
}

func (s *EventService) Update(ctx context.Context, claims *domain.Claims, id, property string, fields ports.EventFields) error {
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
	return s.repo.Update(ctx, id, existing.Property, fields, s.now().UTC())
}

func (s *EventService) Delete(ctx context.Context, claims *domain.Claims, id, property string) error {
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
