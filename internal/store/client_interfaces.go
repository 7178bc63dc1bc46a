package store

import (
	"context"

	"github.com/MKhiriev/go-cart-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ProductRepository is the local product cache.
type ProductRepository interface {
	UpsertProduct(ctx context.Context, product models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
}

// CartRepository persists cart lines, at most one per product.
type CartRepository interface {
	SetCartQuantity(ctx context.Context, product models.Product, quantity int64) error
	UpdateCartQuantity(ctx context.Context, productID int64, quantity int64) error
	GetCartQuantity(ctx context.Context, productID int64) (int64, error)
	ListCartLines(ctx context.Context) ([]models.CartLine, error)
	ClearCart(ctx context.Context) error
}

// WishlistRepository persists wishlist entries, at most one per product.
type WishlistRepository interface {
	AddWishlistEntry(ctx context.Context, product models.Product) error
	RemoveWishlistEntry(ctx context.Context, productID int64) error
	IsWishlisted(ctx context.Context, productID int64) (bool, error)
	WishlistedAmong(ctx context.Context, productIDs []int64) (map[int64]struct{}, error)
	ListWishlistEntries(ctx context.Context) ([]models.WishlistEntry, error)
}
