package domain

// Product is an immutable catalog record as served by the product source.
// The JSON field names are the catalog wire format.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Price       Money  `json:"precio"`
	Stock       *int   `json:"stock,omitempty"`
	Category    string `json:"categoria"`
	Image       string `json:"image"`
}

// StockOf returns a pointer to n, for building products with a known stock.
func StockOf(n int) *int {
	return &n
}

// StockOrZero returns the stock count, treating an unknown stock as 0.
func (p Product) StockOrZero() int {
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}

// StockLimit returns the stock count and whether it is known.
func (p Product) StockLimit() (int, bool) {
	if p.Stock == nil {
		return 0, false
	}
	return *p.Stock, true
}

// InStock reports whether the product has at least one unit available.
func (p Product) InStock() bool {
	return p.StockOrZero() > 0
}

// SoldOut reports whether the stock is known and exhausted.
func (p Product) SoldOut() bool {
	n, known := p.StockLimit()
	return known && n <= 0
}

// clone returns a copy that does not share the stock pointer.
func (p Product) clone() Product {
	if p.Stock != nil {
		p.Stock = StockOf(*p.Stock)
	}
	return p
}

// FindProduct returns the product with the given id.
func FindProduct(products []Product, id int64) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Product{}, false
}

// CopyProducts returns a deep copy of products.
func CopyProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.clone()
	}
	return out
}
