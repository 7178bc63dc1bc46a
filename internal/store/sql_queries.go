package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cart-keeper/models"
)

// sqliteBuilder produces statements with "?" placeholders.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var productColumns = []string{"id", "name", "price", "description", "image"}

const (
	productsTable = "products"
	cartTable     = "cart"
	wishlistTable = "wishlist"
)

func buildUpsertProductQuery(product models.Product) (string, []any, error) {
	return sqliteBuilder.
		Replace(productsTable).
		Columns(productColumns...).
		Values(product.ID, product.Name, product.Price.String(), product.Description, product.Image).
		ToSql()
}

func buildSelectProductsQuery() (string, []any, error) {
	return sqliteBuilder.
		Select(productColumns...).
		From(productsTable).
		OrderBy("id").
		ToSql()
}

func buildSelectProductQuery(productID int64) (string, []any, error) {
	return sqliteBuilder.
		Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"id": productID}).
		ToSql()
}

func buildUpsertCartLineQuery(productID, quantity int64) (string, []any, error) {
	return sqliteBuilder.
		Insert(cartTable).
		Columns("product_id", "quantity").
		Values(productID, quantity).
		Suffix("ON CONFLICT(product_id) DO UPDATE SET quantity = excluded.quantity").
		ToSql()
}

func buildUpdateCartQuantityQuery(productID, quantity int64) (string, []any, error) {
	return sqliteBuilder.
		Update(cartTable).
		Set("quantity", quantity).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
}

func buildDeleteCartLineQuery(productID int64) (string, []any, error) {
	return sqliteBuilder.
		Delete(cartTable).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
}

func buildClearCartQuery() (string, []any, error) {
	return sqliteBuilder.
		Delete(cartTable).
		ToSql()
}

func buildSelectCartQuantityQuery(productID int64) (string, []any, error) {
	return sqliteBuilder.
		Select("quantity").
		From(cartTable).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
}

// lines without a cached product are dropped by the inner join
func buildSelectCartLinesQuery() (string, []any, error) {
	return sqliteBuilder.
		Select(
			"c.id", "c.product_id", "c.quantity",
			"p.id", "p.name", "p.price", "p.description", "p.image",
		).
		From(cartTable + " c").
		Join(productsTable + " p ON p.id = c.product_id").
		OrderBy("c.id").
		ToSql()
}

func buildInsertWishlistEntryQuery(productID int64) (string, []any, error) {
	return sqliteBuilder.
		Insert(wishlistTable).
		Options("OR IGNORE").
		Columns("product_id").
		Values(productID).
		ToSql()
}

func buildDeleteWishlistEntryQuery(productID int64) (string, []any, error) {
	return sqliteBuilder.
		Delete(wishlistTable).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
}

func buildSelectWishlistExistsQuery(productID int64) (string, []any, error) {
	return sqliteBuilder.
		Select("COUNT(1)").
		From(wishlistTable).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
}

func buildSelectWishlistedAmongQuery(productIDs []int64) (string, []any, error) {
	return sqliteBuilder.
		Select("product_id").
		From(wishlistTable).
		Where(sq.Eq{"product_id": productIDs}).
		ToSql()
}

func buildSelectWishlistEntriesQuery() (string, []any, error) {
	return sqliteBuilder.
		Select(
			"w.id", "w.product_id", "w.added_at",
			"p.id", "p.name", "p.price", "p.description", "p.image",
		).
		From(wishlistTable + " w").
		Join(productsTable + " p ON p.id = w.product_id").
		OrderBy("w.added_at DESC", "w.id DESC").
		ToSql()
}
