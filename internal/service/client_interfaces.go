package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cart-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCartService applies quantity rules on top of the cart repository and
// announces every committed change on the event bus.
type ClientCartService interface {
	// GetQuantity returns the persisted quantity for productID, or 0.
	GetQuantity(ctx context.Context, productID int64) (int64, error)

	// SetQuantity stores quantity for product, clamping values below 1 to 1.
	// Removing a product is the explicit Remove path.
	SetQuantity(ctx context.Context, product models.Product, quantity int64) error

	// Increase adds one unit of product, creating the line if needed.
	Increase(ctx context.Context, product models.Product) error

	// Decrease removes one unit of product. A line at quantity 1 is removed;
	// decreasing a product that is not in the cart does nothing.
	Decrease(ctx context.Context, product models.Product) error

	// Remove deletes the product's line unconditionally.
	Remove(ctx context.Context, product models.Product) error

	// Clear empties the cart, e.g. after an order has been placed.
	Clear(ctx context.Context) error

	// Lines returns the cart lines joined with their products.
	Lines(ctx context.Context) ([]models.CartLine, error)

	// Summary returns line count, unit count and subtotal.
	Summary(ctx context.Context) (models.CartSummary, error)
}

// ClientWishlistService manages the wishlist and announces changes on the
// event bus.
type ClientWishlistService interface {
	// Toggle adds product when absent and removes it when present.
	Toggle(ctx context.Context, product models.Product) (models.ToggleResult, error)

	// Add wishlists product; already wishlisted products are left as they are.
	Add(ctx context.Context, product models.Product) error

	// Remove drops productID from the wishlist; absent ids are a no-op.
	Remove(ctx context.Context, productID int64) error

	// Check reports whether productID is wishlisted.
	Check(ctx context.Context, productID int64) (bool, error)

	// CheckMany reports wishlist membership for every id in one query.
	// Every requested id is present in the result.
	CheckMany(ctx context.Context, productIDs []int64) (map[int64]bool, error)

	// List returns wishlist entries newest first.
	List(ctx context.Context) ([]models.WishlistEntry, error)
}

// ClientCatalogService keeps the local product cache in step with the remote
// catalog.
type ClientCatalogService interface {
	// Refresh fetches the remote catalog and upserts every product into the
	// local cache. It returns the number of products stored.
	Refresh(ctx context.Context) (int, error)

	// Products lists the local cache.
	Products(ctx context.Context) ([]models.Product, error)
}

// ClientCatalogRefreshJob periodically calls Refresh on the catalog service.
type ClientCatalogRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 10 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
