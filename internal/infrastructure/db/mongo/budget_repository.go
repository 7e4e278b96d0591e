package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmp/property-portal/internal/core/domain"
)

const budgetsCollection = "budgets"

// BudgetRepository keeps one document per property.
type BudgetRepository struct {
	store
}

func NewBudgetRepository(provider DatabaseProvider) *BudgetRepository {
	return &BudgetRepository{store{provider: provider, name: budgetsCollection}}
}

type budgetDocument struct {
	Property string             `bson:"property"`
	Months   map[string]float64 `bson:"months"`
}

func (r *BudgetRepository) Get(ctx context.Context, property string) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[budgetDocument](ctx, coll, bson.M{"property": property}, "find budget")
	if err != nil {
		return nil, err
	}
	return &domain.Budget{Property: doc.Property, Months: doc.Months}, nil
}

func (r *BudgetRepository) Upsert(ctx context.Context, budget *domain.Budget) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.UpdateOne(ctx,
		bson.M{"property": budget.Property},
		bson.M{"$set": bson.M{"months": budget.Months}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return unavailable("upsert budget", err)
	}
	return nil
}
