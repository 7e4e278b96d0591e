package ports

import (
	"context"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
)

// Every id-addressed mutation below filters on both the record id and the
// owning property, so a write can never cross into another property.

type PropertyRepository interface {
	List(ctx context.Context) ([]domain.Property, error)
	Insert(ctx context.Context, name string) (*domain.Property, error)
}

type BudgetRepository interface {
	// Get returns domain.ErrResourceNotFound when the property has no budget.
	Get(ctx context.Context, property string) (*domain.Budget, error)
	Upsert(ctx context.Context, budget *domain.Budget) error
}

// ContactFields lists the replaceable contact fields; nil leaves a field as is.
type ContactFields struct {
	Name         *string
	Organization *string
	Email        *string
	Phone        *string
	Notes        *string
}

type ContactRepository interface {
	// List filters by type when ctype is non-empty.
	List(ctx context.Context, property string, ctype domain.ContactType) ([]domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	Insert(ctx context.Context, contact *domain.Contact) (string, error)
	Update(ctx context.Context, id, property string, fields ContactFields, at time.Time) error
	PushVisit(ctx context.Context, id, property string, visit domain.Visit, at time.Time) error
	Delete(ctx context.Context, id, property string) error
}

type EventFields struct {
	Title       *string
	Date        *string
	Location    *string
	Description *string
}

type EventRepository interface {
	List(ctx context.Context, property string) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Insert(ctx context.Context, event *domain.Event) (string, error)
	Update(ctx context.Context, id, property string, fields EventFields, at time.Time) error
	Delete(ctx context.Context, id, property string) error
}

type OrderFields struct {
	Title          *string
	Items          *string
	NeededBy       *string
	Vendor         *string
	Cost           *float64
	Notes          *string
	TrackingNumber *string
	Status         *domain.OrderStatus
	ApprovalAt     *time.Time
}

type OrderRepository interface {
	// List returns newest first; status filters when non-empty.
	List(ctx context.Context, property string, status domain.OrderStatus) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Insert(ctx context.Context, order *domain.Order) (string, error)
	Update(ctx context.Context, id, property string, fields OrderFields, at time.Time) error
	Delete(ctx context.Context, id, property string) error
}

type CampaignRepository interface {
	Get(ctx context.Context, property string) (*domain.CampaignSet, error)
	Upsert(ctx context.Context, set *domain.CampaignSet) error
}

type TargetRepository interface {
	Get(ctx context.Context, property string) (*domain.TargetSet, error)
	Upsert(ctx context.Context, set *domain.TargetSet) error
}

type SocialPostRepository interface {
	// List returns newest first, at most limit posts.
	List(ctx context.Context, property, platform string, limit int) ([]domain.SocialPost, error)
	FindByID(ctx context.Context, id string) (*domain.SocialPost, error)
	Insert(ctx context.Context, post *domain.SocialPost) (string, error)
	Delete(ctx context.Context, id, property string) error
}

type FileRepository interface {
	Insert(ctx context.Context, file *domain.StoredFile) (string, error)
	FindByID(ctx context.Context, id string) (*domain.StoredFile, error)
}
