package service

import "errors"

var (
	// ErrInvalidProduct wraps validator errors for product DTOs handed to the
	// cart or wishlist services. Nothing is written and no event is published.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrCatalogUnavailable is returned when the remote catalog cannot be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
