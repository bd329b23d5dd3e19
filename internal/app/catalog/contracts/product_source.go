package contracts

import (
	"context"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// ProductSource supplies the catalog to a client session. It is read once per session.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
