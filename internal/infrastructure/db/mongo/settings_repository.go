package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
)

const (
	campaignsCollection = "campaigns"
	targetsCollection   = "targets"
)

// CampaignRepository keeps one campaign list per property.
type CampaignRepository struct {
	store
}

func NewCampaignRepository(provider DatabaseProvider) *CampaignRepository {
	return &CampaignRepository{store{provider: provider, name: campaignsCollection}}
}

type campaignDocument struct {
	Property  string            `bson:"property"`
	Campaigns []domain.Campaign `bson:"campaigns"`
	UpdatedAt time.Time         `bson:"updatedAt"`
	UpdatedBy string            `bson:"updatedBy"`
}

func (r *CampaignRepository) Get(ctx context.Context, property string) (*domain.CampaignSet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[campaignDocument](ctx, coll, bson.M{"property": property}, "find campaigns")
	if err != nil {
		return nil, err
	}
	campaigns := doc.Campaigns
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return &domain.CampaignSet{
		Property:  doc.Property,
		Campaigns: campaigns,
		UpdatedAt: doc.UpdatedAt,
		UpdatedBy: doc.UpdatedBy,
	}, nil
}

func (r *CampaignRepository) Upsert(ctx context.Context, set *domain.CampaignSet) error {
	return upsertByProperty(ctx, r.store, set.Property, campaignDocument{
		Property:  set.Property,
		Campaigns: set.Campaigns,
		UpdatedAt: set.UpdatedAt,
		UpdatedBy: set.UpdatedBy,
	}, "upsert campaigns")
}

// TargetRepository keeps one target configuration per property.
type TargetRepository struct {
	store
}

func NewTargetRepository(provider DatabaseProvider) *TargetRepository {
	return &TargetRepository{store{provider: provider, name: targetsCollection}}
}

type targetDocument struct {
	Property  string              `bson:"property"`
	Config    domain.TargetConfig `bson:"config"`
	UpdatedAt time.Time           `bson:"updatedAt"`
	UpdatedBy string              `bson:"updatedBy"`
}

func (r *TargetRepository) Get(ctx context.Context, property string) (*domain.TargetSet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[targetDocument](ctx, coll, bson.M{"property": property}, "find targets")
	if err != nil {
		return nil, err
	}
	cfg := doc.Config
	if cfg.Weekly == nil {
		cfg.Weekly = []domain.TargetItem{}
	}
	if cfg.Monthly == nil {
		cfg.Monthly = []domain.TargetItem{}
	}
	return &domain.TargetSet{
		Property:  doc.Property,
		Config:    cfg,
		UpdatedAt: doc.UpdatedAt,
		UpdatedBy: doc.UpdatedBy,
	}, nil
}

func (r *TargetRepository) Upsert(ctx context.Context, set *domain.TargetSet) error {
	return upsertByProperty(ctx, r.store, set.Property, targetDocument{
		Property:  set.Property,
		Config:    set.Config,
		UpdatedAt: set.UpdatedAt,
		UpdatedBy: set.UpdatedBy,
	}, "upsert targets")
}

func upsertByProperty(ctx context.Context, s store, property string, doc any, op string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.ReplaceOne(ctx, bson.M{"property": property}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return unavailable(op, err)
	}
	return nil
}
