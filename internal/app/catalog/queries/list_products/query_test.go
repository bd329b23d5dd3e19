package list_products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/repo"
)

type brokenReadModel struct{ err error }

func (b brokenReadModel) ListProducts(context.Context) ([]domain.Product, error) { return nil, b.err }
func (b brokenReadModel) GetProductByID(context.Context, int64) (*domain.Product, error) {
	return nil, b.err
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("seed catalog", func(t *testing.T) {
		rm, err := repo.NewSeedReadModel()
		require.NoError(t, err)

		products, err := NewQuery(rm).Execute(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 11)
	})

	t.Run("empty catalog is not nil", func(t *testing.T) {
		products, err := NewQuery(repo.NewStaticReadModel(nil)).Execute(ctx)
		require.NoError(t, err)
		assert.NotNil(t, products)
	})

	t.Run("read model failure", func(t *testing.T) {
		boom := errors.New("session pool exhausted")
		_, err := NewQuery(brokenReadModel{err: boom}).Execute(ctx)

		assert.ErrorIs(t, err, domain.ErrProductsUnavailable)
		assert.ErrorIs(t, err, boom)
	})
}
