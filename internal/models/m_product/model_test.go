package m_product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "nombre", "descripcion", "precio", "stock", "categoria", "image"}, Columns())
}

func TestModel_Mutations(t *testing.T) {
	m := NewModel()

	assert.NotNil(t, m.UpsertMut(&Data{ID: 1, Nombre: "Sofá Nórdico", Precio: 189000}))
	assert.NotNil(t, m.DeleteAllMut())
}
