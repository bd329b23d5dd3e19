package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrProductNotFound     = errors.New("product not found")
	ErrProductsUnavailable = errors.New("products unavailable")
	ErrInvalidSortMode     = errors.New("invalid sort mode")

	// Cart errors
	ErrOutOfStock    = errors.New("product is out of stock")
	ErrMalformedCart = errors.New("persisted cart is not a list of cart lines")
)
