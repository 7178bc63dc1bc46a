package service

import (
	"github.com/MKhiriev/go-cart-keeper/internal/adapter"
	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
)

// ClientServices groups every client-side service around one event bus.
type ClientServices struct {
	CartService       ClientCartService
	WishlistService   ClientWishlistService
	CatalogService    ClientCatalogService
	CatalogRefreshJob ClientCatalogRefreshJob
	CartContext       *CartContext
	Bus               *events.Bus
}

func NewClientServices(storages *store.ClientStorages, catalogAdapter adapter.CatalogAdapter, bus *events.Bus, log *logger.Logger) *ClientServices {
	cartSvc := NewClientCartService(storages, bus)
	catalogSvc := NewClientCatalogService(storages, catalogAdapter, bus)

	return &ClientServices{
		CartService:       cartSvc,
		WishlistService:   NewClientWishlistService(storages, bus),
		CatalogService:    catalogSvc,
		CatalogRefreshJob: NewClientCatalogRefreshJob(catalogSvc),
		CartContext:       NewCartContext(cartSvc, bus, log),
		Bus:               bus,
	}
}
