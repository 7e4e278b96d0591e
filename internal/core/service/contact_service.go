package service

import (
	"context"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

type ContactService struct {
	repo ports.ContactRepository
	gate *Gate
	now  func() time.Time
}

func NewContactService(repo ports.ContactRepository, gate *Gate) *ContactService {
	return &ContactService{repo: repo, gate: gate, now: time.Now}
}

func (s *ContactService) List(ctx context.Context, claims *domain.Claims, property string, ctype domain.ContactType) ([]domain.Contact, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	if !ctype.Valid() {
		return nil, domain.InvalidInput("type must be one of: general, partnership, department")
	}
	return s.repo.List(ctx, property, ctype)
}

// Grouped returns every contact of the property split by type.
func (s *ContactService) Grouped(ctx context.Context, claims *domain.Claims, property string) (*domain.ContactGroups, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	all, err := s.repo.List(ctx, property, "")
	if err != nil {
		return nil, err
	}
	groups := &domain.ContactGroups{
		General:      []domain.Contact{},
		Partnerships: []domain.Contact{},
		Departments:  []domain.Contact{},
	}
	for _, c := range all {
		switch c.Type {
		case domain.ContactGeneral:
			groups.General = append(groups.General, c)
		case domain.ContactPartnership:
			groups.Partnerships = append(groups.Partnerships, c)
		case domain.ContactDepartment:
			groups.Departments = append(groups.Departments, c)
		}
	}
	return groups, nil
}

func (s *ContactService) Create(ctx context.Context, claims *domain.Claims, in ports.ContactInput) (string, error) {
	if in.Property == "" || in.Type == "" {
		return "", domain.InvalidInput("property and type are required")
	}
	if !in.Type.Valid() {
		return "", domain.InvalidInput("type must be one of: general, partnership, department")
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: in.Property}); err != nil {
		return "", err
	}
	return s.repo.Insert(ctx, &domain.Contact{
		Property:     in.Property,
		Type:         in.Type,
		Name:         in.Name,
		Organization: in.Organization,
		Email:        in.Email,
		Phone:        in.Phone,
		Notes:        in.Notes,
		Visits:       []domain.Visit{},
		CreatedAt:    s.now().UTC(),
	})
}

// Update either appends a visit or replaces fields, authorizing against the
// property the contact is actually stored under.
func (s *ContactService) Update(ctx context.Context, claims *domain.Claims, id string, in ports.ContactUpdateInput) error {
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
	if in.PushVisit != nil {
		visit := *in.PushVisit
		if visit.By == "" {
			visit.By = claims.Subject
		}
		return s.repo.PushVisit(ctx, id, existing.Property, visit, now)
	}
	return s.repo.Update(ctx, id, existing.Property, in.Fields, now)
}

func (s *ContactService) Delete(ctx context.Context, claims *domain.Claims, id, property string) error {
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
