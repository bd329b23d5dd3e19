package domain

import "fmt"

// SortMode selects the ordering of the visible product list.
type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNameAsc   SortMode = "name-asc"
	SortStockDesc SortMode = "stock-desc"
)

// AllCategories is the category selector that disables the category filter.
const AllCategories = "all"

// SortModes lists the supported modes in the order the storefront offers them.
func SortModes() []SortMode {
	return []SortMode{SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortStockDesc}
}

// ParseSortMode validates a sort mode name. The empty string means featured.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortFeatured, nil
	}
	for _, m := range SortModes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortMode, s)
}

// FilterCriteria holds the search, filter and sort parameters applied to the catalog.
// It is a comparable value so it can key a memoized result.
type FilterCriteria struct {
	Query        string
	PriceCeiling Money // 0 means no ceiling
	OnlyInStock  bool
	Category     string
	Sort         SortMode
}

// DefaultCriteria returns criteria that let every product through in featured order.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category: AllCategories,
		Sort:     SortFeatured,
	}
}
