package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/furniture-catalog/internal/pkg/clock"
)

func TestNotifier(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("clears after the duration", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		n := NewNotifier(clk, 0)

		n.Show("Aparador Nórdico agregado al carrito")
		assert.Equal(t, "Aparador Nórdico agregado al carrito", n.Text())

		clk.Advance(2499 * time.Millisecond)
		assert.NotEmpty(t, n.Text())

		clk.Advance(time.Millisecond)
		assert.Empty(t, n.Text())
		assert.Zero(t, clk.Pending())
	})

	t.Run("new notice restarts the timer", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		n := NewNotifier(clk, DefaultNoticeDuration)

		n.Show("first")
		clk.Advance(2 * time.Second)
		n.Show("second")
		assert.Equal(t, 1, clk.Pending(), "at most one pending clear")

		clk.Advance(time.Second)
		assert.Equal(t, "second", n.Text())

		clk.Advance(1500 * time.Millisecond)
		assert.Empty(t, n.Text())
	})

	t.Run("stop cancels the timer", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		n := NewNotifier(clk, time.Second)

		n.Show("x")
		n.Stop()
		assert.Empty(t, n.Text())
		assert.Zero(t, clk.Pending())
	})
}
