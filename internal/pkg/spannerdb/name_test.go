package spannerdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatabaseName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		name, err := ParseDatabaseName("projects/test-project/instances/dev-instance/databases/furniture-catalog-db")
		require.NoError(t, err)

		assert.Equal(t, DatabaseName{Project: "test-project", Instance: "dev-instance", Database: "furniture-catalog-db"}, name)
		assert.Equal(t, "projects/test-project", name.ProjectPath())
		assert.Equal(t, "projects/test-project/instances/dev-instance", name.InstancePath())
		assert.Equal(t, "projects/test-project/instances/dev-instance/databases/furniture-catalog-db", name.String())
	})

	invalid := []string{
		"",
		"furniture-catalog-db",
		"projects/p/instances/i",
		"projects/p/instances/i/databases/",
		"projects/p/instance/i/databases/d",
		"projects//instances/i/databases/d",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseDatabaseName(in)
			assert.ErrorIs(t, err, ErrInvalidDatabaseName)
		})
	}
}
