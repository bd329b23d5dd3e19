package m_product

// Field name constants for the productos table.
const (
	TableName = "productos"

	ID          = "id"
	Nombre      = "nombre"
	Descripcion = "descripcion"
	Precio      = "precio"
	Stock       = "stock"
	Categoria   = "categoria"
	Image       = "image"
)

// Columns lists every column in declaration order.
func Columns() []string {
	return []string{ID, Nombre, Descripcion, Precio, Stock, Categoria, Image}
}
