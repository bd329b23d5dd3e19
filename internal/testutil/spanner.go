// Package testutil holds helpers for tests that run against the Spanner emulator.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/models/m_cart_slot"
	"github.com/light-bringer/furniture-catalog/internal/models/m_product"
	"github.com/light-bringer/furniture-catalog/internal/pkg/spannerdb"
	"github.com/light-bringer/furniture-catalog/migrations"
)

var (
	schemaOnce sync.Once
	schemaErr  error
)

// SetupSpannerTest creates the test database with the current schema on first
// use, then returns a client on an emptied database and a cleanup function.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, ensureSchema(ctx), "failed to bootstrap test database")

	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

func ensureSchema(ctx context.Context) error {
	schemaOnce.Do(func() {
		name, err := spannerdb.ParseDatabaseName(GetTestSpannerDB())
		if err != nil {
			schemaErr = err
			return
		}
		schemaErr = spannerdb.NewBootstrapper(name, spannerdb.EmulatorInstanceConfig, zap.NewNop()).Run(ctx, migrations.FS)
	})
	return schemaErr
}

// GetTestSpannerDB returns the test database, overridable with SPANNER_TEST_DATABASE.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/furniture-catalog-test"
}

// CleanDatabase truncates all tables for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_cart_slot.TableName, spanner.AllKeys()),
		spanner.Delete(m_product.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
