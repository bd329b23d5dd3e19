package m_cart_slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"slot_key", "payload", "updated_at"}, Columns())
}

func TestModel_UpsertMut(t *testing.T) {
	assert.NotNil(t, NewModel().UpsertMut("cart", `[{"id":1,"quantity":2}]`))
}
