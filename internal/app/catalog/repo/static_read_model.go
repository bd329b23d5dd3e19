package repo

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

//go:embed seed/productos.json
var seedJSON []byte

// SeedProducts returns the built-in furniture catalog in stored order.
func SeedProducts() ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(seedJSON, &products); err != nil {
		return nil, fmt.Errorf("failed to decode seed catalog: %w", err)
	}
	return products, nil
}

// StaticReadModel serves a fixed, in-memory product list.
type StaticReadModel struct {
	products []domain.Product
}

// NewStaticReadModel creates a ReadModel over products. The slice is not copied.
func NewStaticReadModel(products []domain.Product) contracts.ReadModel {
	if products == nil {
		products = make([]domain.Product, 0)
	}
	return &StaticReadModel{products: products}
}

// NewSeedReadModel creates a ReadModel over the built-in catalog.
func NewSeedReadModel() (contracts.ReadModel, error) {
	products, err := SeedProducts()
	if err != nil {
		return nil, err
	}
	return NewStaticReadModel(products), nil
}

// ListProducts returns every product in stored order.
func (rm *StaticReadModel) ListProducts(_ context.Context) ([]domain.Product, error) {
	return domain.CopyProducts(rm.products), nil
}

// GetProductByID returns the product with the given id.
func (rm *StaticReadModel) GetProductByID(_ context.Context, productID int64) (*domain.Product, error) {
	p, ok := domain.FindProduct(rm.products, productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}
