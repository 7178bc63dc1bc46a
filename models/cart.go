// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// CartLine is a single "this product, this quantity" row of the active cart,
// joined with the cached product data used for display.
//
// A line with Quantity == 0 never exists: setting the quantity to zero
// deletes the row.
type CartLine struct {
	// ID is the auto-assigned row identifier.
	ID int64 `json:"id"`

	// ProductID references Product.ID. At most one line exists per product.
	ProductID int64 `json:"product_id"`

	// Quantity is always >= 1 while the line exists.
	Quantity int64 `json:"quantity"`

	// Product holds the joined product cache row.
	Product Product `json:"product"`
}

// Total returns price * quantity for the line.
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// TableName returns the name of the database table
// associated with the CartLine model.
func (l *CartLine) TableName() string {
	return "cart"
}

// CartSummary is the aggregate view of the cart. It is derived on every read
// and never persisted.
type CartSummary struct {
	// TotalItems is the number of distinct cart lines.
	TotalItems int64 `json:"total_items"`

	// TotalQuantity is the sum of all line quantities.
	TotalQuantity int64 `json:"total_quantity"`

	// Subtotal is the sum of price * quantity over all lines.
	Subtotal decimal.Decimal `json:"subtotal"`
}

// SummarizeCart aggregates lines into a [CartSummary].
func SummarizeCart(lines []CartLine) CartSummary {
	summary := CartSummary{Subtotal: decimal.Zero}
	for _, line := range lines {
		summary.TotalItems++
		summary.TotalQuantity += line.Quantity
		summary.Subtotal = summary.Subtotal.Add(line.Total())
	}
	return summary
}
