package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/adapter"
	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/metrics"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/models"
)

type clientCatalogService struct {
	productRepository store.ProductRepository
	catalogAdapter    adapter.CatalogAdapter
	bus               *events.Bus
}

// NewClientCatalogService creates a catalog service that copies the remote
// catalog into the local product cache.
func NewClientCatalogService(storages *store.ClientStorages, catalogAdapter adapter.CatalogAdapter, bus *events.Bus) ClientCatalogService {
	return &clientCatalogService{
		productRepository: storages.ProductRepository,
		catalogAdapter:    catalogAdapter,
		bus:               bus,
	}
}

// Refresh implements [ClientCatalogService]. Cart and wishlist rows join the
// cache, so both topics are published once the cache has been updated.
// A failure halfway leaves the products written so far in place.
func (s *clientCatalogService) Refresh(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	products, err := s.catalogAdapter.ListProducts(ctx)
	if err != nil {
		metrics.CatalogRefreshTotal.WithLabelValues(metrics.ResultError).Inc()
		log.Err(err).Str("func", "clientCatalogService.Refresh").Msg("failed to fetch remote catalog")
		return 0, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	stored := 0
	for _, p := range products {
		if err = s.productRepository.UpsertProduct(ctx, p); err != nil {
			metrics.CatalogRefreshTotal.WithLabelValues(metrics.ResultError).Inc()
			log.Err(err).
				Str("func", "clientCatalogService.Refresh").
				Int64("product_id", p.ID).
				Int("stored", stored).
				Msg("failed to cache product")
			return stored, fmt.Errorf("error caching product %d: %w", p.ID, err)
		}
		stored++
	}

	metrics.CatalogRefreshTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info().Str("func", "clientCatalogService.Refresh").Int("products", stored).Msg("catalog refreshed")

	if stored > 0 {
		s.bus.Publish(ctx, events.CartChanged)
		s.bus.Publish(ctx, events.WishlistChanged)
	}
	return stored, nil
}

func (s *clientCatalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.productRepository.ListProducts(ctx)
}
