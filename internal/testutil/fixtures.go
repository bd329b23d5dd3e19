package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/furniture-catalog/internal/models/m_product"
)

// InsertProducts writes product rows directly.
func InsertProducts(t *testing.T, client *spanner.Client, rows ...*m_product.Data) {
	t.Helper()

	model := m_product.NewModel()
	muts := make([]*spanner.Mutation, 0, len(rows))
	for _, row := range rows {
		muts = append(muts, model.UpsertMut(row))
	}

	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to insert test products")
}
