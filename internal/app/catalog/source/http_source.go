// Package source provides the product sources a client session loads the catalog from.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// ProductsPath is the catalog endpoint relative to the API base URL.
const ProductsPath = "/api/productos"

// HTTPSource fetches the catalog with GET {baseURL}/api/productos.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource. A zero timeout waits indefinitely.
func NewHTTPSource(baseURL string, timeout time.Duration) contracts.ProductSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchProducts returns the catalog in the order the server sent it.
func (s *HTTPSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+ProductsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProductsUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrProductsUnavailable, resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: failed to decode products: %w", domain.ErrProductsUnavailable, err)
	}
	if products == nil {
		products = make([]domain.Product, 0)
	}
	return products, nil
}
