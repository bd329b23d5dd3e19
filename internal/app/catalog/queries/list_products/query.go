package list_products

import (
	"context"
	"fmt"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns the whole catalog in stored order. It never returns a nil slice.
func (q *Query) Execute(ctx context.Context) ([]domain.Product, error) {
	products, err := q.readModel.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProductsUnavailable, err)
	}
	if products == nil {
		products = make([]domain.Product, 0)
	}
	return products, nil
}
