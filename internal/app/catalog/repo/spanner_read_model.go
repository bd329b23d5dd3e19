package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/models/m_product"
	"github.com/light-bringer/furniture-catalog/internal/pkg/query"
)

// SpannerReadModel implements ReadModel over the productos table.
type SpannerReadModel struct {
	client *spanner.Client
}

// NewSpannerReadModel creates a new ReadModel backed by Spanner.
func NewSpannerReadModel(client *spanner.Client) contracts.ReadModel {
	return &SpannerReadModel{client: client}
}

func productsQuery() *query.Builder {
	return query.From(m_product.TableName).Select(m_product.Columns()...)
}

// ListProducts returns every product ordered by id.
func (rm *SpannerReadModel) ListProducts(ctx context.Context) ([]domain.Product, error) {
	stmt := productsQuery().OrderBy(m_product.ID, query.Asc).Build()

	products, err := rm.queryProducts(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProductByID retrieves one product.
func (rm *SpannerReadModel) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	stmt := productsQuery().Where(query.Eq(m_product.ID, productID)).Limit(1).Build()

	products, err := rm.queryProducts(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to read product: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return &products[0], nil
}

func (rm *SpannerReadModel) queryProducts(ctx context.Context, stmt spanner.Statement) ([]domain.Product, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, dataToProduct(&data))
	}
	return products, nil
}
