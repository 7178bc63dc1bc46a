// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cart-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validProduct() models.Product {
	return models.Product{
		ID:    10,
		Name:  "Linen shirt",
		Price: decimal.RequireFromString("49.90"),
	}
}

func TestNewProductValidator(t *testing.T) {
	v := NewProductValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Product
// ---------------------------------------------------------------------------

func TestValidate_Product(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.Product)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Product) {}},
		{name: "free product is allowed", mutate: func(p *models.Product) { p.Price = decimal.Zero }},
		{name: "zero id", mutate: func(p *models.Product) { p.ID = 0 }, wantErr: ErrInvalidProductID},
		{name: "negative id", mutate: func(p *models.Product) { p.ID = -3 }, wantErr: ErrInvalidProductID},
		{name: "empty name", mutate: func(p *models.Product) { p.Name = "" }, wantErr: ErrEmptyProductName},
		{name: "negative price", mutate: func(p *models.Product) { p.Price = decimal.NewFromInt(-1) }, wantErr: ErrNegativePrice},
		{
			name:   "scoped to id ignores name",
			mutate: func(p *models.Product) { p.Name = "" },
			fields: []string{FieldProductID},
		},
		{name: "unknown field", mutate: func(*models.Product) {}, fields: []string{"colour"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := v.Validate(ctx, p, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			errPtr := v.Validate(ctx, &p, tt.fields...)
			assert.Equal(t, err, errPtr)
		})
	}
}

func TestValidate_ProductIDs(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, ProductID(1)))
	assert.ErrorIs(t, v.Validate(ctx, ProductID(0)), ErrInvalidProductID)

	assert.NoError(t, v.Validate(ctx, ProductIDs{}))
	assert.NoError(t, v.Validate(ctx, ProductIDs{1, 2}))
	assert.ErrorIs(t, v.Validate(ctx, ProductIDs{1, -2}), ErrInvalidProductID)
	assert.ErrorIs(t, v.Validate(ctx, ProductIDs{}, FieldProductIDs), ErrEmptyProductIDs)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewProductValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "shirt"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Product)(nil)), ErrUnsupportedType)
}
