package spannerdb

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/furniture-catalog/migrations"
)

func TestSplitDDL(t *testing.T) {
	content := `-- catalog
CREATE TABLE productos (
    id INT64 NOT NULL,
) PRIMARY KEY (id);

-- index
CREATE INDEX idx_productos_categoria ON productos(categoria);
`

	statements := SplitDDL(content)

	require.Len(t, statements, 2)
	assert.Equal(t, "CREATE TABLE productos (\nid INT64 NOT NULL,\n) PRIMARY KEY (id)", statements[0])
	assert.Equal(t, "CREATE INDEX idx_productos_categoria ON productos(categoria)", statements[1])
}

func TestPendingStatements(t *testing.T) {
	statements := []string{
		"CREATE TABLE productos (id INT64 NOT NULL) PRIMARY KEY (id)",
		"CREATE INDEX idx_productos_categoria ON productos(categoria)",
		"CREATE TABLE cart_slots (slot_key STRING(200) NOT NULL) PRIMARY KEY (slot_key)",
	}

	t.Run("empty database keeps everything", func(t *testing.T) {
		assert.Equal(t, statements, PendingStatements(statements, nil))
	})

	t.Run("existing objects are skipped", func(t *testing.T) {
		existing := []string{
			"CREATE TABLE Productos (\n  id INT64 NOT NULL,\n) PRIMARY KEY(id)",
			"CREATE INDEX idx_productos_categoria ON productos(categoria)",
		}

		pending := PendingStatements(statements, existing)

		assert.Equal(t, []string{statements[2]}, pending)
	})

	t.Run("non-create statements are kept", func(t *testing.T) {
		alter := []string{"ALTER TABLE productos ADD COLUMN color STRING(50)"}
		assert.Equal(t, alter, PendingStatements(alter, []string{"CREATE TABLE productos (id INT64) PRIMARY KEY (id)"}))
	})
}

func TestLoadMigrations(t *testing.T) {
	t.Run("files load in name order", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_b.sql":  {Data: []byte("CREATE TABLE b (id INT64) PRIMARY KEY (id);")},
			"001_a.sql":  {Data: []byte("CREATE TABLE a (id INT64) PRIMARY KEY (id);")},
			"README.txt": {Data: []byte("ignored")},
		}

		got, err := LoadMigrations(fsys)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, "001_a.sql", got[0].Name)
		assert.Equal(t, "002_b.sql", got[1].Name)
	})

	t.Run("embedded schema", func(t *testing.T) {
		got, err := LoadMigrations(migrations.FS)
		require.NoError(t, err)

		require.NotEmpty(t, got)
		assert.Len(t, got[0].Statements, 3)
	})
}
