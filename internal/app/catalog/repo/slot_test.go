package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
)

const testRedisAddr = "localhost:6379"

// exerciseSlot runs the SlotStore contract against any backend.
func exerciseSlot(t *testing.T, slot contracts.SlotStore) {
	t.Helper()
	ctx := context.Background()
	key := "cart-" + uuid.NewString()

	t.Run("empty slot", func(t *testing.T) {
		_, err := slot.Read(ctx, key)
		assert.ErrorIs(t, err, contracts.ErrSlotEmpty)
	})

	t.Run("write then read", func(t *testing.T) {
		require.NoError(t, slot.Write(ctx, key, []byte(`[{"id":1,"quantity":2}]`)))

		got, err := slot.Read(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"quantity":2}]`, string(got))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, slot.Write(ctx, key, []byte(`[]`)))

		got, err := slot.Read(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		_, err := slot.Read(ctx, key+"-other")
		assert.ErrorIs(t, err, contracts.ErrSlotEmpty)
	})
}

func TestMemorySlot(t *testing.T) {
	exerciseSlot(t, NewMemorySlot())
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	value := []byte(`[]`)
	require.NoError(t, slot.Write(ctx, "cart", value))
	value[0] = 'x'

	got, err := slot.Read(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestSQLiteSlot(t *testing.T) {
	slot, err := OpenSQLiteSlot(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = slot.Close() })

	exerciseSlot(t, slot)
}

func TestSQLiteSlot_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shop.db")

	slot, err := OpenSQLiteSlot(path)
	require.NoError(t, err)
	require.NoError(t, slot.Write(ctx, "cart", []byte(`[{"id":5,"quantity":2}]`)))
	require.NoError(t, slot.Close())

	reopened, err := OpenSQLiteSlot(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Read(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":5,"quantity":2}]`, string(got))
}

func TestRedisSlot(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	t.Cleanup(func() { _ = client.Close() })

	prefix := "test:" + uuid.NewString() + ":"
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	exerciseSlot(t, NewRedisSlot(client, prefix))
}
