// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the product payloads that cross into the cart
// and wishlist services.
//
// Callers hand the services a single models.Product DTO. Alternate remote
// shapes are normalized earlier, in the catalog adapter, so a validator only
// decides whether the DTO is usable: a positive id, a non-empty name and a
// non-negative price. Bare ids and id batches (ProductID, ProductIDs) are
// checked the same way before Remove, Check and CheckMany hit the store.
package validators

import "context"

// Validator validates a product, a product id or a batch of ids. When fields
// are given, only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
