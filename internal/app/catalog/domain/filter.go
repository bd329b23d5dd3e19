package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newSpanishCollator returns a collator for natural Spanish alphabetical order
// (ñ after n, accented vowels next to their base letter).
// collate.Collator keeps internal buffers, so callers must not share one across goroutines.
func newSpanishCollator() *collate.Collator {
	return collate.New(language.Spanish)
}

// ApplyCriteria returns the products matching the criteria in display order.
// The input slice is never modified; equal sort keys keep their source order.
func ApplyCriteria(products []Product, c FilterCriteria) []Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	visible := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesQuery(p, query) {
			continue
		}
		if c.OnlyInStock && !p.InStock() {
			continue
		}
		if c.PriceCeiling != 0 && p.Price > c.PriceCeiling {
			continue
		}
		if c.Category != "" && c.Category != AllCategories && p.Category != c.Category {
			continue
		}
		visible = append(visible, p.clone())
	}

	sortProducts(visible, c.Sort)
	return visible
}

func matchesQuery(p Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func sortProducts(products []Product, mode SortMode) {
	var less func(a, b Product) bool

	switch mode {
	case SortPriceAsc:
		less = func(a, b Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b Product) bool { return a.Price > b.Price }
	case SortNameAsc:
		col := newSpanishCollator()
		less = func(a, b Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case SortStockDesc:
		less = func(a, b Product) bool { return a.StockOrZero() > b.StockOrZero() }
	default:
		less = func(a, b Product) bool {
			if sa, sb := a.StockOrZero(), b.StockOrZero(); sa != sb {
				return sa > sb
			}
			return a.Price < b.Price
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

// Categories returns the distinct product categories in Spanish alphabetical order.
func Categories(products []Product) []string {
	seen := make(map[string]bool, len(products))
	categories := make([]string, 0)
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}

	col := newSpanishCollator()
	sort.SliceStable(categories, func(i, j int) bool {
		return col.CompareString(categories[i], categories[j]) < 0
	})
	return categories
}

// PriceBounds is the price range of the loaded catalog.
type PriceBounds struct {
	Min Money `json:"min"`
	Max Money `json:"max"`
}

// HasRange reports whether a price slider makes sense for these bounds.
func (b PriceBounds) HasRange() bool {
	return b.Max > 0 && b.Max != b.Min
}

// ComputeBounds returns the min and max price. An empty catalog yields {0, 0}.
func ComputeBounds(products []Product) PriceBounds {
	if len(products) == 0 {
		return PriceBounds{}
	}
	b := PriceBounds{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < b.Min {
			b.Min = p.Price
		}
		if p.Price > b.Max {
			b.Max = p.Price
		}
	}
	return b
}
