// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertCartLineQuery(t *testing.T) {
	query, args, err := buildUpsertCartLineQuery(7, 3)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO cart (product_id,quantity) VALUES (?,?) ON CONFLICT(product_id) DO UPDATE SET quantity = excluded.quantity", query)
	assert.Equal(t, []any{int64(7), int64(3)}, args)
}

func Test_buildUpdateCartQuantityQuery(t *testing.T) {
	query, args, err := buildUpdateCartQuantityQuery(7, 2)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE cart SET quantity = ? WHERE product_id = ?", query)
	assert.Equal(t, []any{int64(2), int64(7)}, args)
}

func Test_buildUpsertProductQuery_StoresPriceAsText(t *testing.T) {
	query, args, err := buildUpsertProductQuery(testProduct(1, "a", "10.50"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "REPLACE INTO products"))
	require.Len(t, args, 5)
	assert.Equal(t, "10.5", args[2])
}

func Test_buildSelectWishlistedAmongQuery(t *testing.T) {
	query, args, err := buildSelectWishlistedAmongQuery([]int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, "SELECT product_id FROM wishlist WHERE product_id IN (?,?,?)", query)
	assert.Len(t, args, 3)
}

func Test_buildSelectWishlistEntriesQuery_Order(t *testing.T) {
	query, _, err := buildSelectWishlistEntriesQuery()
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY w.added_at DESC, w.id DESC")
	assert.NotContains(t, query, "$1", "sqlite uses ? placeholders")
}

func Test_buildInsertWishlistEntryQuery_IgnoresDuplicates(t *testing.T) {
	query, _, err := buildInsertWishlistEntryQuery(4)
	require.NoError(t, err)

	assert.Equal(t, "INSERT OR IGNORE INTO wishlist (product_id) VALUES (?)", query)
}
