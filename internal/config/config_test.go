package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.HTTPPort)
	assert.Equal(t, SourceStatic, cfg.Catalog.Source)
	assert.Equal(t, SlotSQLite, cfg.Client.Slot.Backend)
	assert.Equal(t, "cart", cfg.Client.Slot.Key)
	assert.True(t, cfg.Server.EnableEcho)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
server:
  http_port: "3001"
  enable_echo: false
  shutdown_timeout: 10s
catalog:
  source: spanner
  cache_ttl: 1m
client:
  transport: grpc
  slot:
    backend: redis
    key: carrito
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.HTTPPort)
	assert.False(t, cfg.Server.EnableEcho)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, SourceSpanner, cfg.Catalog.Source)
	assert.Equal(t, time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, TransportGRPC, cfg.Client.Transport)
	assert.Equal(t, SlotRedis, cfg.Client.Slot.Backend)
	assert.Equal(t, "carrito", cfg.Client.Slot.Key)
	assert.Equal(t, "9090", cfg.Server.GRPCPort, "unset fields keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("CART_SLOT_BACKEND", "memory")
	t.Setenv("ENABLE_ECHO", "false")
	t.Setenv("CATALOG_API_URL", "http://catalog.internal")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.HTTPPort)
	assert.Equal(t, SlotMemory, cfg.Client.Slot.Backend)
	assert.False(t, cfg.Server.EnableEcho)
	assert.Equal(t, "http://catalog.internal", cfg.Client.APIURL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("unknown slot backend", func(t *testing.T) {
		t.Setenv("CART_SLOT_BACKEND", "cookies")
		_, err := Load("")
		assert.ErrorContains(t, err, "cart slot backend")
	})

	t.Run("unknown catalog source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "postgres")
		_, err := Load("")
		assert.ErrorContains(t, err, "catalog source")
	})
}
