package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/models/m_product"
)

// ProductToData converts a domain product to its productos row.
func ProductToData(p domain.Product) *m_product.Data {
	data := &m_product.Data{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      int64(p.Price),
		Categoria:   p.Category,
		Image:       p.Image,
	}
	if n, known := p.StockLimit(); known {
		data.Stock = spanner.NullInt64{Int64: int64(n), Valid: true}
	}
	return data
}

func dataToProduct(data *m_product.Data) domain.Product {
	p := domain.Product{
		ID:          data.ID,
		Name:        data.Nombre,
		Description: data.Descripcion,
		Price:       domain.Money(data.Precio),
		Category:    data.Categoria,
		Image:       data.Image,
	}
	if data.Stock.Valid {
		p.Stock = domain.StockOf(int(data.Stock.Int64))
	}
	return p
}
