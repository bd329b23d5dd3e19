package m_cart_slot

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the cart_slots table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a mutation storing payload under key, stamped with the commit timestamp.
func (m *Model) UpsertMut(key, payload string) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{key, payload, spanner.CommitTimestamp},
	)
}
