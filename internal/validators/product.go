package validators

import (
	"context"

	"github.com/MKhiriev/go-cart-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldProductID targets the remote-assigned product identifier.
	FieldProductID = "product_id"

	// FieldName targets the display name of a product.
	FieldName = "name"

	// FieldPrice targets the list price of a product.
	FieldPrice = "price"

	// FieldProductIDs targets a batch of product identifiers.
	FieldProductIDs = "product_ids"
)

// ProductID marks a bare product identifier for validation.
type ProductID int64

// ProductIDs marks a batch of product identifiers for validation.
type ProductIDs []int64

// ProductValidator implements the Validator interface for product DTOs
// handed to the cart and wishlist services.
type ProductValidator struct {
}

// NewProductValidator constructs a new ProductValidator and returns it as the
// Validator interface.
func NewProductValidator() Validator {
	return &ProductValidator{}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.Product / *models.Product
//   - ProductID
//   - ProductIDs
//
// Returns ErrUnsupportedType for anything else.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProduct(ctx, *value, fields...)

	case ProductID:
		if value <= 0 {
			return ErrInvalidProductID
		}
		return nil

	case ProductIDs:
		return v.validateProductIDs(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateProduct checks id > 0, a non-empty name and a non-negative price
// unless fields narrows the set.
func (v *ProductValidator) validateProduct(_ context.Context, product models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProductID, FieldName, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldProductID:
			if product.ID <= 0 {
				return ErrInvalidProductID
			}
		case FieldName:
			if product.Name == "" {
				return ErrEmptyProductName
			}
		case FieldPrice:
			if product.Price.IsNegative() {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProductIDs checks every id is positive. The list itself may be
// empty unless FieldProductIDs is requested explicitly.
func (v *ProductValidator) validateProductIDs(_ context.Context, ids ProductIDs, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldProductIDs:
			if len(ids) == 0 {
				return ErrEmptyProductIDs
			}
		default:
			return ErrUnknownField
		}
	}

	for _, id := range ids {
		if id <= 0 {
			return ErrInvalidProductID
		}
	}

	return nil
}
