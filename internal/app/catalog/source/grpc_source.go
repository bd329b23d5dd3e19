package source

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/transport/grpc/catalog"
)

// GRPCSource fetches the catalog from CatalogService/ListProducts.
type GRPCSource struct {
	client  *catalog.Client
	timeout time.Duration
}

// NewGRPCSource creates a GRPCSource over cc. A zero timeout waits indefinitely.
func NewGRPCSource(cc grpc.ClientConnInterface, timeout time.Duration) contracts.ProductSource {
	return &GRPCSource{client: catalog.NewClient(cc), timeout: timeout}
}

// FetchProducts returns the catalog in the order the server sent it.
func (s *GRPCSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
