package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/models"
)

// cartRepository is the SQLite-backed implementation of [CartRepository].
//
// The cart table carries a unique index on product_id, and quantity writes
// go through INSERT ... ON CONFLICT, so two writers can never produce two
// lines for the same product.
type cartRepository struct {
	*DB
	logger *logger.Logger
}

// NewCartRepository constructs a [CartRepository] backed by db.
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	return &cartRepository{
		DB:     db,
		logger: logger,
	}
}

// SetCartQuantity upserts the product into the cache and then sets the line
// quantity in the same transaction. A quantity of zero or less deletes the
// line and leaves the cached product untouched; deleting an absent line is a
// no-op.
func (r *cartRepository) SetCartQuantity(ctx context.Context, product models.Product, quantity int64) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if quantity <= 0 {
			return execCartQuantity(ctx, tx, product.ID, 0, deleteCartLineQuery)
		}

		if err := upsertProduct(ctx, tx, product); err != nil {
			return err
		}
		return execCartQuantity(ctx, tx, product.ID, quantity, buildUpsertCartLineQuery)
	})
	if err != nil {
		log.Err(err).
			Str("func", "cartRepository.SetCartQuantity").
			Int64("product_id", product.ID).
			Int64("quantity", quantity).
			Bool("retryable", r.IsRetryable(err)).
			Msg("failed to set cart quantity")
		return err
	}

	return nil
}

// UpdateCartQuantity changes the quantity of an existing line without
// touching the product cache. A quantity of zero or less deletes the line.
// Updating an absent line is a no-op.
func (r *cartRepository) UpdateCartQuantity(ctx context.Context, productID int64, quantity int64) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if quantity <= 0 {
			return execCartQuantity(ctx, tx, productID, 0, deleteCartLineQuery)
		}
		return execCartQuantity(ctx, tx, productID, quantity, buildUpdateCartQuantityQuery)
	})
	if err != nil {
		log.Err(err).
			Str("func", "cartRepository.UpdateCartQuantity").
			Int64("product_id", productID).
			Int64("quantity", quantity).
			Bool("retryable", r.IsRetryable(err)).
			Msg("failed to update cart quantity")
		return err
	}

	return nil
}

func deleteCartLineQuery(productID, _ int64) (string, []any, error) {
	return buildDeleteCartLineQuery(productID)
}

func execCartQuantity(ctx context.Context, tx DBTX, productID, quantity int64, build func(productID, quantity int64) (string, []any, error)) error {
	query, args, err := build(productID, quantity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// GetCartQuantity returns the persisted quantity for productID, or 0 when the
// product has no line.
func (r *cartRepository) GetCartQuantity(ctx context.Context, productID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCartQuantityQuery(productID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var quantity int64
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "cartRepository.GetCartQuantity").
			Int64("product_id", productID).
			Msg("failed to get cart quantity")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return quantity, nil
}

// ListCartLines returns every cart line joined with its cached product, in
// insertion order.
func (r *cartRepository) ListCartLines(ctx context.Context) ([]models.CartLine, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCartLinesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cartRepository.ListCartLines").
			Msg("failed to execute query for listing cart lines")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lines := make([]models.CartLine, 0, 16)
	for rows.Next() {
		var line models.CartLine
		scanErr := rows.Scan(
			&line.ID,
			&line.ProductID,
			&line.Quantity,
			&line.Product.ID,
			&line.Product.Name,
			&line.Product.Price,
			&line.Product.Description,
			&line.Product.Image,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "cartRepository.ListCartLines").
				Msg("failed to scan cart line row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		lines = append(lines, line)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "cartRepository.ListCartLines").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lines, nil
}

// ClearCart deletes every cart line. Cached products stay.
func (r *cartRepository) ClearCart(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearCartQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cartRepository.ClearCart").
			Msg("failed to clear cart")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
