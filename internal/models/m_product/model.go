package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the productos table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a mutation writing a product row, replacing any row with the same id.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.ID,
			data.Nombre,
			data.Descripcion,
			data.Precio,
			data.Stock,
			data.Categoria,
			data.Image,
		},
	)
}

// DeleteAllMut creates a mutation deleting every row of the table.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
