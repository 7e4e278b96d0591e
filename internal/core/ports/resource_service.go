package ports

import (
	"context"
	"io"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
)

// Every method takes the caller's claims; implementations run them through
// the authorization gate before touching a repository.

type PropertyService interface {
	List(ctx context.Context, claims *domain.Claims) ([]domain.Property, error)
	Create(ctx context.Context, claims *domain.Claims, name string) (*domain.Property, error)
}

type BudgetService interface {
	Get(ctx context.Context, claims *domain.Claims, property string) (map[string]float64, error)
	Put(ctx context.Context, claims *domain.Claims, property string, months map[string]float64) error
}

type ContactInput struct {
	Property     string
	Type         domain.ContactType
	Name         string
	Organization string
	Email        string
	Phone        string
	Notes        string
}

// ContactUpdateInput either appends PushVisit or replaces Fields.
type ContactUpdateInput struct {
	Property  string
	Fields    ContactFields
	PushVisit *domain.Visit
}

type ContactService interface {
	List(ctx context.Context, claims *domain.Claims, property string, ctype domain.ContactType) ([]domain.Contact, error)
	Grouped(ctx context.Context, claims *domain.Claims, property string) (*domain.ContactGroups, error)
	Create(ctx context.Context, claims *domain.Claims, in ContactInput) (string, error)
	Update(ctx context.Context, claims *domain.Claims, id string, in ContactUpdateInput) error
	Delete(ctx context.Context, claims *domain.Claims, id, property string) error
}

type EventInput struct {
	Property    string
	Title       string
	Date        string
	Location    string
	Description string
}

type EventService interface {
	List(ctx context.Context, claims *domain.Claims, property string) ([]domain.Event, error)
	Create(ctx context.Context, claims *domain.Claims, in EventInput) (string, error)
	Update(ctx context.Context, claims *domain.Claims, id, property string, fields EventFields) error
	Delete(ctx context.Context, claims *domain.Claims, id, property string) error
}

type OrderInput struct {
	Property string
	Title    string
	Items    string
	NeededBy string
	Vendor   string
	Cost     float64
	Notes    string
}

type OrderUpdateInput struct {
	Property       string
	Title          *string
	Items          *string
	NeededBy       *string
	Vendor         *string
	Cost           *float64
	Notes          *string
	TrackingNumber *string
	Status         *string
}

type OrderService interface {
	List(ctx context.Context, claims *domain.Claims, property, status string) ([]domain.Order, error)
	Create(ctx context.Context, claims *domain.Claims, in OrderInput) (string, error)
	Update(ctx context.Context, claims *domain.Claims, id string, in OrderUpdateInput) error
	Delete(ctx context.Context, claims *domain.Claims, id, property string) error
}

type CampaignService interface {
	Get(ctx context.Context, claims *domain.Claims, property string) (*domain.CampaignSet, error)
	Put(ctx context.Context, claims *domain.Claims, property string, campaigns []domain.Campaign) (*domain.CampaignSet, error)
}

type TargetService interface {
	Get(ctx context.Context, claims *domain.Claims, property string) (*domain.TargetSet, error)
	Put(ctx context.Context, claims *domain.Claims, property string, cfg domain.TargetConfig) (*domain.TargetSet, error)
}

type SocialPostInput struct {
	Property  string
	Platform  string
	ImageURL  string
	Timestamp time.Time
	Permalink string
	Caption   string
}

type SocialFeedService interface {
	List(ctx context.Context, claims *domain.Claims, property, platform string, limit int) ([]domain.SocialPost, error)
	Create(ctx context.Context, claims *domain.Claims, in SocialPostInput) (string, error)
	Delete(ctx context.Context, claims *domain.Claims, id, property string) error
}

// UploadInput carries an unread body; it is only consumed once the caller
// is authorized for Property.
type UploadInput struct {
	Property    string
	Filename    string
	ContentType string
	Body        io.Reader
}

type FileService interface {
	Upload(ctx context.Context, claims *domain.Claims, in UploadInput) (string, error)
	Download(ctx context.Context, claims *domain.Claims, id string) (*domain.StoredFile, error)
}
