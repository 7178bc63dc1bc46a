package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidProductID = errors.New("invalid product ID")
	ErrEmptyProductName = errors.New("product name is required")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrEmptyProductIDs  = errors.New("product IDs list cannot be empty")
)
