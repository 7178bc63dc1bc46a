// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Product is the locally cached copy of a remote catalog item.
// It carries only the fields the cart and wishlist screens need to render
// offline. The ID is assigned by the remote catalog and is never generated
// locally.
type Product struct {
	// ID is the remote catalog identifier. Must be positive.
	ID int64 `json:"id"`

	// Name is the display name of the product. Required.
	Name string `json:"name"`

	// Price is the base list price, distinct from any per-variant sale price.
	Price decimal.Decimal `json:"price"`

	// Description is an optional long description.
	Description string `json:"description,omitempty"`

	// Image is an optional image URL.
	Image string `json:"image,omitempty"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p *Product) TableName() string {
	return "products"
}
