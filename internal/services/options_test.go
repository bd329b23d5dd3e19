package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/config"
	"github.com/light-bringer/furniture-catalog/internal/pkg/clock"
)

func TestNewServiceOptions_Static(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.PublicDir = t.TempDir()

	opts, err := NewServiceOptions(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer opts.Close()

	assert.Nil(t, opts.SpannerClient)
	assert.Nil(t, opts.RedisClient)

	products, err := opts.ReadModel.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 11)

	rec := httptest.NewRecorder()
	opts.HTTPHandler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/greeting", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewShopOptions_EndToEnd(t *testing.T) {
	ctx := context.Background()

	serverCfg := config.DefaultConfig()
	serverCfg.Server.PublicDir = t.TempDir()
	server, err := NewServiceOptions(ctx, serverCfg, zap.NewNop())
	require.NoError(t, err)
	defer server.Close()

	api := httptest.NewServer(server.HTTPHandler.Routes())
	defer api.Close()

	cfg := config.DefaultConfig()
	cfg.Client.APIURL = api.URL
	cfg.Client.RequestTimeout = 5 * time.Second
	cfg.Client.Slot.SQLitePath = filepath.Join(t.TempDir(), "shop.db")

	shop, err := NewShopOptions(ctx, cfg, zap.NewNop(), clock.NewMockClock(time.Now()))
	require.NoError(t, err)

	require.NoError(t, shop.Session.Start(ctx))
	require.NoError(t, shop.Session.AddToCart(ctx, 9, 1))
	shop.Close()

	// A new session on the same slot restores the cart.
	again, err := NewShopOptions(ctx, cfg, zap.NewNop(), clock.NewMockClock(time.Now()))
	require.NoError(t, err)
	defer again.Close()

	require.NoError(t, again.Session.Start(ctx))
	lines := again.Session.Cart()
	require.Len(t, lines, 1)
	assert.Equal(t, "Sofá Boreal 3C", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestNewShopOptions_MemorySlot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Client.Slot.Backend = config.SlotMemory
	cfg.Client.Transport = config.TransportGRPC

	opts, err := NewShopOptions(context.Background(), cfg, zap.NewNop(), clock.NewRealClock())
	require.NoError(t, err)
	defer opts.Close()

	assert.NotNil(t, opts.Session)
	assert.NotNil(t, opts.Source)
}
