package m_product

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the productos table.
type Data struct {
	ID          int64             `spanner:"id"`
	Nombre      string            `spanner:"nombre"`
	Descripcion string            `spanner:"descripcion"`
	Precio      int64             `spanner:"precio"`
	Stock       spanner.NullInt64 `spanner:"stock"`
	Categoria   string            `spanner:"categoria"`
	Image       string            `spanner:"image"`
}
