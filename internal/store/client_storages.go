package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/config"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
)

// ClientStorages groups all client-side repositories around one shared
// SQLite connection so the service layer can be wired from a single value.
type ClientStorages struct {
	// ProductRepository is the local cache of catalog products.
	ProductRepository ProductRepository
	// CartRepository persists cart lines.
	CartRepository CartRepository
	// WishlistRepository persists wishlist entries.
	WishlistRepository WishlistRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of that connection.
//
// Every failure matches [ErrStorageUnavailable].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
	}

	return newClientStoragesFromDB(db, logger), nil
}

func newClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		ProductRepository:  NewProductRepository(db, logger),
		CartRepository:     NewCartRepository(db, logger),
		WishlistRepository: NewWishlistRepository(db, logger),
		db:                 db,
	}
}

// IsRetryable reports whether a storage error returned by one of the
// repositories is transient.
func (s *ClientStorages) IsRetryable(err error) bool {
	if s == nil || s.db == nil {
		return false
	}
	return s.db.IsRetryable(err)
}

// Close releases the shared database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}
	return nil
}
