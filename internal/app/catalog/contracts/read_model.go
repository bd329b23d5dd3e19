package contracts

import (
	"context"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// ReadModel defines the interface for catalog queries on the server side.
// The catalog is read-only: products come from a seed or an external table.
type ReadModel interface {
	// ListProducts returns every product in stored order
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProductByID returns domain.ErrProductNotFound when the id has no match
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
}
