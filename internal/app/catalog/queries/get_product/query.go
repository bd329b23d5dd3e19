package get_product

import (
	"context"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID int64
}

// Query handles the get product query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a product by ID. Unknown ids return domain.ErrProductNotFound.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	return q.readModel.GetProductByID(ctx, req.ProductID)
}
