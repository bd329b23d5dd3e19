package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

func TestSeedProducts(t *testing.T) {
	products, err := SeedProducts()
	require.NoError(t, err)
	require.Len(t, products, 11)

	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID, "seed keeps stored order")
		assert.NotEmpty(t, p.Name)
		assert.NotNil(t, p.Stock)
		assert.Positive(t, int64(p.Price))
	}

	first := products[0]
	assert.Equal(t, "Aparador Nórdico", first.Name)
	assert.Equal(t, domain.Money(189000), first.Price)
	assert.Equal(t, 4, *first.Stock)
	assert.Equal(t, "Storage", first.Category)
	assert.Equal(t, "/assets/aparador-nordico.jpg", first.Image)
}

func TestStaticReadModel(t *testing.T) {
	ctx := context.Background()
	rm, err := NewSeedReadModel()
	require.NoError(t, err)

	t.Run("list returns a copy", func(t *testing.T) {
		products, err := rm.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 11)

		*products[0].Stock = 0
		products[0].Name = "changed"

		again, err := rm.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, *again[0].Stock)
		assert.Equal(t, "Aparador Nórdico", again[0].Name)
	})

	t.Run("get by id", func(t *testing.T) {
		p, err := rm.GetProductByID(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, "Sofá Boreal 3C", p.Name)
		assert.Equal(t, domain.Money(312000), p.Price)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := rm.GetProductByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("nil list", func(t *testing.T) {
		products, err := NewStaticReadModel(nil).ListProducts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestProductMapping(t *testing.T) {
	t.Run("known stock", func(t *testing.T) {
		p := domain.Product{ID: 3, Name: "Mesa Ratona Río", Price: 110000, Stock: domain.StockOf(6), Category: "Mesas"}

		data := ProductToData(p)
		assert.True(t, data.Stock.Valid)
		assert.Equal(t, int64(6), data.Stock.Int64)
		assert.Equal(t, p, dataToProduct(data))
	})

	t.Run("unknown stock", func(t *testing.T) {
		p := domain.Product{ID: 12, Name: "Banqueta", Price: 5000}

		data := ProductToData(p)
		assert.False(t, data.Stock.Valid)
		assert.Nil(t, dataToProduct(data).Stock)
	})
}
