package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Times(t *testing.T) {
	assert.Equal(t, Money(378000), Money(189000).Times(2))
	assert.Equal(t, Money(0), Money(189000).Times(0))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, Money(0).IsZero())
	assert.False(t, Money(1).IsZero())
	assert.True(t, Money(-1).IsNegative())
	assert.False(t, Money(0).IsNegative())
}

func TestMoney_String(t *testing.T) {
	t.Run("groups thousands with dots", func(t *testing.T) {
		assert.Equal(t, "$ 189.000", Money(189000).String())
		assert.Equal(t, "$ 1.234.567", Money(1234567).String())
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, "$ 0", Money(0).String())
	})

	t.Run("negative", func(t *testing.T) {
		assert.Equal(t, "-$ 312.000", Money(-312000).String())
	})
}

func TestParseSortMode(t *testing.T) {
	for _, m := range SortModes() {
		got, err := ParseSortMode(string(m))
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseSortMode("")
	assert.NoError(t, err)
	assert.Equal(t, SortFeatured, got)

	_, err = ParseSortMode("cheapest")
	assert.ErrorIs(t, err, ErrInvalidSortMode)
}
