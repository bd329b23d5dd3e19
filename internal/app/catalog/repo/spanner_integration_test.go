//go:build integration

package repo

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/models/m_cart_slot"
	"github.com/light-bringer/furniture-catalog/internal/models/m_product"
	"github.com/light-bringer/furniture-catalog/internal/testutil"
)

func TestSpannerReadModel(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	testutil.InsertProducts(t, client,
		&m_product.Data{ID: 2, Nombre: "Librero Modular Horizonte", Precio: 265000, Stock: spanner.NullInt64{Int64: 3, Valid: true}, Categoria: "Storage"},
		&m_product.Data{ID: 1, Nombre: "Aparador Nórdico", Precio: 189000, Stock: spanner.NullInt64{Int64: 4, Valid: true}, Categoria: "Storage"},
		&m_product.Data{ID: 12, Nombre: "Banqueta", Precio: 5000, Categoria: "Living"},
	)

	rm := NewSpannerReadModel(client)

	t.Run("list is ordered by id", func(t *testing.T) {
		products, err := rm.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)

		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, int64(2), products[1].ID)
		assert.Equal(t, int64(12), products[2].ID)
		assert.Nil(t, products[2].Stock, "NULL stock stays unknown")
	})

	t.Run("get by id", func(t *testing.T) {
		p, err := rm.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Aparador Nórdico", p.Name)
		assert.Equal(t, domain.Money(189000), p.Price)
		assert.Equal(t, 4, *p.Stock)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := rm.GetProductByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestSpannerSlot(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	exerciseSlot(t, NewSpannerSlot(client))
	testutil.AssertRowCount(t, client, m_cart_slot.TableName, 1)
}
