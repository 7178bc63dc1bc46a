package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/models"
)

// wishlistRepository is the SQLite-backed implementation of [WishlistRepository].
type wishlistRepository struct {
	*DB
	logger *logger.Logger
}

// NewWishlistRepository constructs a [WishlistRepository] backed by db.
func NewWishlistRepository(db *DB, logger *logger.Logger) WishlistRepository {
	return &wishlistRepository{
		DB:     db,
		logger: logger,
	}
}

// AddWishlistEntry upserts the product and inserts an entry for it in one
// transaction. Adding an already wishlisted product keeps the original entry.
func (r *wishlistRepository) AddWishlistEntry(ctx context.Context, product models.Product) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := upsertProduct(ctx, tx, product); err != nil {
			return err
		}

		query, args, err := buildInsertWishlistEntryQuery(product.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "wishlistRepository.AddWishlistEntry").
			Int64("product_id", product.ID).
			Bool("retryable", r.IsRetryable(err)).
			Msg("failed to add wishlist entry")
		return err
	}

	return nil
}

// RemoveWishlistEntry deletes the entry for productID; absent entries are a no-op.
func (r *wishlistRepository) RemoveWishlistEntry(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteWishlistEntryQuery(productID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "wishlistRepository.RemoveWishlistEntry").
			Int64("product_id", productID).
			Msg("failed to remove wishlist entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *wishlistRepository) IsWishlisted(ctx context.Context, productID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWishlistExistsQuery(productID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "wishlistRepository.IsWishlisted").
			Int64("product_id", productID).
			Msg("failed to check wishlist entry")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}

// WishlistedAmong returns the subset of productIDs that are wishlisted,
// using a single query.
func (r *wishlistRepository) WishlistedAmong(ctx context.Context, productIDs []int64) (map[int64]struct{}, error) {
	log := logger.FromContext(ctx)

	found := make(map[int64]struct{}, len(productIDs))
	if len(productIDs) == 0 {
		return found, nil
	}

	query, args, err := buildSelectWishlistedAmongQuery(productIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "wishlistRepository.WishlistedAmong").
			Int("ids_count", len(productIDs)).
			Msg("failed to execute query for wishlisted products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		found[id] = struct{}{}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "wishlistRepository.WishlistedAmong").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return found, nil
}

// ListWishlistEntries returns entries joined with their cached products,
// newest first.
func (r *wishlistRepository) ListWishlistEntries(ctx context.Context) ([]models.WishlistEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWishlistEntriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "wishlistRepository.ListWishlistEntries").
			Msg("failed to execute query for listing wishlist")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.WishlistEntry, 0, 16)
	for rows.Next() {
		var entry models.WishlistEntry
		scanErr := rows.Scan(
			&entry.ID,
			&entry.ProductID,
			&entry.AddedAt,
			&entry.Product.ID,
			&entry.Product.Name,
			&entry.Product.Price,
			&entry.Product.Description,
			&entry.Product.Image,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "wishlistRepository.ListWishlistEntries").
				Msg("failed to scan wishlist row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "wishlistRepository.ListWishlistEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
