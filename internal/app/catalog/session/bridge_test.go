package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/repo"
)

// failingSlot fails every call.
type failingSlot struct{ err error }

func (f failingSlot) Read(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingSlot) Write(context.Context, string, []byte) error  { return f.err }

func TestBridge_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot", func(t *testing.T) {
		b := NewBridge(repo.NewMemorySlot(), "", zap.NewNop())
		assert.Equal(t, DefaultSlotKey, b.Key())
		assert.Empty(t, b.Restore(ctx))
	})

	t.Run("persisted lines", func(t *testing.T) {
		slot := repo.NewMemorySlot()
		require.NoError(t, slot.Write(ctx, "cart", []byte(`[{"id":1,"nombre":"Aparador Nórdico","precio":189000,"stock":4,"quantity":2}]`)))

		lines := NewBridge(slot, "cart", zap.NewNop()).Restore(ctx)
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].ID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, domain.Money(189000), lines[0].Price)
	})

	malformed := map[string]string{
		"not json":        `{{{`,
		"object":          `{"id":1,"quantity":2}`,
		"array of values": `[1,2,3]`,
		"string":          `"cart"`,
	}
	for name, payload := range malformed {
		t.Run("malformed "+name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			slot := repo.NewMemorySlot()
			require.NoError(t, slot.Write(ctx, "cart", []byte(payload)))

			lines := NewBridge(slot, "cart", zap.New(core)).Restore(ctx)
			assert.Empty(t, lines)
			assert.Equal(t, 1, logs.FilterMessage("discarding malformed cart").Len())
		})
	}

	t.Run("read error", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		b := NewBridge(failingSlot{err: errors.New("disk gone")}, "cart", zap.New(core))

		assert.Empty(t, b.Restore(ctx))
		assert.Equal(t, 1, logs.FilterMessage("failed to read cart slot").Len())
	})
}

func TestBridge_Persist(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		slot := repo.NewMemorySlot()
		b := NewBridge(slot, "cart", zap.NewNop())

		b.Persist(ctx, []domain.CartLine{{Product: domain.Product{ID: 1}, Quantity: 2}})

		lines := b.Restore(ctx)
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].ID)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("nil cart is stored as empty array", func(t *testing.T) {
		slot := repo.NewMemorySlot()
		NewBridge(slot, "cart", zap.NewNop()).Persist(ctx, nil)

		data, err := slot.Read(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("write errors are logged", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		b := NewBridge(failingSlot{err: errors.New("quota exceeded")}, "cart", zap.New(core))

		assert.NotPanics(t, func() { b.Persist(ctx, nil) })
		assert.Equal(t, 1, logs.FilterMessage("failed to write cart slot").Len())
	})
}
