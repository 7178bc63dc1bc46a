// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WishlistEntry is a saved-for-later product reference joined with the cached
// product data. Entries are created and deleted, never updated.
type WishlistEntry struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
	Product   Product   `json:"product"`
}

// TableName returns the name of the database table
// associated with the WishlistEntry model.
func (w *WishlistEntry) TableName() string {
	return "wishlist"
}

// WishlistAction names what a toggle did.
type WishlistAction string

const (
	WishlistAdded   WishlistAction = "added"
	WishlistRemoved WishlistAction = "removed"
)

// ToggleResult is returned by a wishlist toggle so callers can update their
// icon state without a second query.
type ToggleResult struct {
	Success bool           `json:"success"`
	Action  WishlistAction `json:"action"`
}
