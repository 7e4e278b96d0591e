package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

const maxCampaignIDLen = 32

// CampaignService manages per-property campaign lists. Writes are admin-only.
type CampaignService struct {
	repo ports.CampaignRepository
	gate *Gate
	now  func() time.Time
}

func NewCampaignService(repo ports.CampaignRepository, gate *Gate) *CampaignService {
	return &CampaignService{repo: repo, gate: gate, now: time.Now}
}

func (s *CampaignService) Get(ctx context.Context, claims *domain.Claims, property string) (*domain.CampaignSet, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, property)
}

// Put replaces the list after normalizing it: ids default to a slug of the
// label and entries without a label are dropped.
func (s *CampaignService) Put(ctx context.Context, claims *domain.Claims, property string, campaigns []domain.Campaign) (*domain.CampaignSet, error) {
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property, AdminOnly: true}); err != nil {
		return nil, err
	}
	if property == "" || campaigns == nil {
		return nil, domain.InvalidInput("property and campaigns are required")
	}

	list := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if n := normalizeCampaign(c); n.Label != "" {
			list = append(list, n)
		}
	}
	set := &domain.CampaignSet{
		Property:  property,
		Campaigns: list,
		UpdatedAt: s.now().UTC(),
		UpdatedBy: claims.Subject,
	}
	if err := s.repo.Upsert(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func normalizeCampaign(c domain.Campaign) domain.Campaign {
	out := domain.Campaign{
		ID:      strings.TrimSpace(c.ID),
		Label:   strings.TrimSpace(c.Label),
		Visible: c.Visible,
		Color:   strings.TrimSpace(c.Color),
	}
	if out.ID == "" {
		slug := nonSlug.ReplaceAllString(strings.ToLower(out.Label), "-")
		if len(slug) > maxCampaignIDLen {
			slug = slug[:maxCampaignIDLen]
		}
		out.ID = slug
	}
	return out
}

// TargetService manages per-property target configuration. Writes are
// admin-only.
type TargetService struct {
	repo ports.TargetRepository
	gate *Gate
	now  func() time.Time
}

func NewTargetService(repo ports.TargetRepository, gate *Gate) *TargetService {
	return &TargetService{repo: repo, gate: gate, now: time.Now}
}

func (s *TargetService) Get(ctx context.Context, claims *domain.Claims, property string) (*domain.TargetSet, error) {
	if err := requireProperty(property); err != nil {
		return nil, err
	}
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, property)
}

func (s *TargetService) Put(ctx context.Context, claims *domain.Claims, property string, cfg domain.TargetConfig) (*domain.TargetSet, error) {
	if err := s.gate.Check(ctx, claims, domain.Access{Property: property, AdminOnly: true}); err != nil {
		return nil, err
	}
	if property == "" {
		return nil, domain.InvalidInput("property and config are required")
	}

	set := &domain.TargetSet{
		Property: property,
		Config: domain.TargetConfig{
			Weekly:  normalizeTargets(cfg.Weekly),
			Monthly: normalizeTargets(cfg.Monthly),
		},
		UpdatedAt: s.now().UTC(),
		UpdatedBy: claims.Subject,
	}
	if err := s.repo.Upsert(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func normalizeTargets(items []domain.TargetItem) []domain.TargetItem {
	out := make([]domain.TargetItem, 0, len(items))
	for _, it := range items {
		cadence := domain.CadenceMonthly
		if it.Cadence == domain.CadenceWeekly {
			cadence = domain.CadenceWeekly
		}
		out = append(out, domain.TargetItem{
			ID:      strings.TrimSpace(it.ID),
			Label:   strings.TrimSpace(it.Label),
			Cadence: cadence,
			Visible: it.Visible,
			Min:     it.Min,
			Max:     it.Max,
		})
	}
	return out
}
