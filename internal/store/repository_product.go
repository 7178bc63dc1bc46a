// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/models"
)

// productRepository is the SQLite-backed implementation of [ProductRepository].
// Rows are cached copies of remote catalog products and are never deleted
// on their own.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertProduct inserts the product or replaces the cached row with the same id.
func (r *productRepository) UpsertProduct(ctx context.Context, product models.Product) error {
	log := logger.FromContext(ctx)

	if err := upsertProduct(ctx, r.DB, product); err != nil {
		log.Err(err).
			Str("func", "productRepository.UpsertProduct").
			Int64("product_id", product.ID).
			Msg("failed to upsert product")
		return err
	}

	return nil
}

// ListProducts returns every cached product ordered by id.
func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.ListProducts").
			Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 32)
	for rows.Next() {
		var p models.Product
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image); scanErr != nil {
			log.Err(scanErr).
				Str("func", "productRepository.ListProducts").
				Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		products = append(products, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "productRepository.ListProducts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

// GetProduct returns the cached product or [ErrProductNotFound].
func (r *productRepository) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductQuery(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Product
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.GetProduct").
			Int64("product_id", productID).
			Msg("failed to get product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// upsertProduct writes the product through q, which may be a transaction.
func upsertProduct(ctx context.Context, q DBTX, product models.Product) error {
	query, args, err := buildUpsertProductQuery(product)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
