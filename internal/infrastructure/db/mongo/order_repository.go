package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

const ordersCollection = "orders"

type OrderRepository struct {
	store
}

func NewOrderRepository(provider DatabaseProvider) *OrderRepository {
	return &OrderRepository{store{provider: provider, name: ordersCollection}}
}

type orderDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Property       string             `bson:"property"`
	Title          string             `bson:"title"`
	Items          string             `bson:"items"`
	NeededBy       string             `bson:"neededBy"`
	Vendor         string             `bson:"vendor"`
	Cost           float64            `bson:"cost"`
	Notes          string             `bson:"notes"`
	Status         domain.OrderStatus `bson:"status"`
	SubmittedAt    time.Time          `bson:"submittedAt"`
	ApprovalAt     *time.Time         `bson:"approvalAt"`
	TrackingNumber string             `bson:"trackingNumber"`
	CreatedBy      string             `bson:"createdBy"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (d orderDocument) toDomain() domain.Order {
	return domain.Order{
		ID:             d.ID.Hex(),
		Property:       d.Property,
		Title:          d.Title,
		Items:          d.Items,
		NeededBy:       d.NeededBy,
		Vendor:         d.Vendor,
		Cost:           d.Cost,
		Notes:          d.Notes,
		Status:         d.Status,
		SubmittedAt:    d.SubmittedAt,
		ApprovalAt:     d.ApprovalAt,
		TrackingNumber: d.TrackingNumber,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *OrderRepository) List(ctx context.Context, property string, status domain.OrderStatus) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"property": property}
	if status != "" {
		filter["status"] = status
	}
	docs, err := findAll[orderDocument](ctx, coll, filter, "list orders",
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[orderDocument](ctx, coll, bson.M{"_id": oid}, "find order")
	if err != nil {
		return nil, err
	}
	o := doc.toDomain()
	return &o, nil
}

func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, orderDocument{
		Property:    o.Property,
		Title:       o.Title,
		Items:       o.Items,
		NeededBy:    o.NeededBy,
		Vendor:      o.Vendor,
		Cost:        o.Cost,
		Notes:       o.Notes,
		Status:      o.Status,
		SubmittedAt: o.SubmittedAt,
		ApprovalAt:  o.ApprovalAt,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	})
	if err != nil {
		return "", unavailable("insert order", err)
	}
	return insertedID(res), nil
}

func (r *OrderRepository) Update(ctx context.Context, id, property string, fields ports.OrderFields, at time.Time) error {
	filter, err := ownedFilter(id, property)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	set := bson.M{"updatedAt": at}
	setIf(set, "title", fields.Title)
	setIf(set, "items", fields.Items)
	setIf(set, "neededBy", fields.NeededBy)
	setIf(set, "vendor", fields.Vendor)
	setIf(set, "cost", fields.Cost)
	setIf(set, "notes", fields.Notes)
	setIf(set, "trackingNumber", fields.TrackingNumber)
	setIf(set, "status", fields.Status)
	setIf(set, "approvalAt", fields.ApprovalAt)
	return updateOwned(ctx, coll, filter, bson.M{"$set": set}, "update order")
}

func (r *OrderRepository) Delete(ctx context.Context, id, property string) error {
	filter, err := ownedFilter(id, property)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	return deleteOwned(ctx, coll, filter, "delete order")
}
