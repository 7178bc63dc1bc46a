package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/metrics"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/internal/validators"
	"github.com/MKhiriev/go-cart-keeper/models"
)

type clientWishlistService struct {
	wishlistRepository store.WishlistRepository
	bus                *events.Bus
	validator          validators.Validator
	locks              *keyedMutex
}

// NewClientWishlistService creates a wishlist service on top of the storages'
// wishlist repository. Committed mutations are announced on bus as
// [events.WishlistChanged].
func NewClientWishlistService(storages *store.ClientStorages, bus *events.Bus) ClientWishlistService {
	return &clientWishlistService{
		wishlistRepository: storages.WishlistRepository,
		bus:                bus,
		validator:          validators.NewProductValidator(),
		locks:              newKeyedMutex(),
	}
}

func (s *clientWishlistService) Toggle(ctx context.Context, product models.Product) (models.ToggleResult, error) {
	if err := s.validator.Validate(ctx, product); err != nil {
		return models.ToggleResult{}, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}

	action, err := s.toggle(ctx, product)
	metrics.WishlistMutationsTotal.WithLabelValues("toggle", metrics.Result(err)).Inc()
	if err != nil {
		return models.ToggleResult{}, err
	}

	s.bus.Publish(ctx, events.WishlistChanged)
	return models.ToggleResult{Success: true, Action: action}, nil
}

func (s *clientWishlistService) toggle(ctx context.Context, product models.Product) (models.WishlistAction, error) {
	unlock := s.locks.Lock(product.ID)
	defer unlock()

	wishlisted, err := s.wishlistRepository.IsWishlisted(ctx, product.ID)
	if err != nil {
		return "", fmt.Errorf("error checking wishlist: %w", err)
	}

	if wishlisted {
		if err = s.wishlistRepository.RemoveWishlistEntry(ctx, product.ID); err != nil {
			return "", fmt.Errorf("error removing from wishlist: %w", err)
		}
		return models.WishlistRemoved, nil
	}

	if err = s.wishlistRepository.AddWishlistEntry(ctx, product); err != nil {
		return "", fmt.Errorf("error adding to wishlist: %w", err)
	}
	return models.WishlistAdded, nil
}

func (s *clientWishlistService) Add(ctx context.Context, product models.Product) error {
	if err := s.validator.Validate(ctx, product); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}

	err := s.withLock(product.ID, func() error {
		return s.wishlistRepository.AddWishlistEntry(ctx, product)
	})
	metrics.WishlistMutationsTotal.WithLabelValues("add", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("error adding to wishlist: %w", err)
	}

	s.bus.Publish(ctx, events.WishlistChanged)
	return nil
}

func (s *clientWishlistService) Remove(ctx context.Context, productID int64) error {
	if err := s.validator.Validate(ctx, validators.ProductID(productID)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}

	err := s.withLock(productID, func() error {
		return s.wishlistRepository.RemoveWishlistEntry(ctx, productID)
	})
	metrics.WishlistMutationsTotal.WithLabelValues("remove", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("error removing from wishlist: %w", err)
	}

	s.bus.Publish(ctx, events.WishlistChanged)
	return nil
}

func (s *clientWishlistService) Check(ctx context.Context, productID int64) (bool, error) {
	return s.wishlistRepository.IsWishlisted(ctx, productID)
}

func (s *clientWishlistService) CheckMany(ctx context.Context, productIDs []int64) (map[int64]bool, error) {
	if err := s.validator.Validate(ctx, validators.ProductIDs(productIDs)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	if len(productIDs) == 0 {
		return map[int64]bool{}, nil
	}

	found, err := s.wishlistRepository.WishlistedAmong(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("error checking wishlist: %w", err)
	}

	result := make(map[int64]bool, len(productIDs))
	for _, id := range productIDs {
		_, ok := found[id]
		result[id] = ok
	}
	return result, nil
}

func (s *clientWishlistService) List(ctx context.Context) ([]models.WishlistEntry, error) {
	return s.wishlistRepository.ListWishlistEntries(ctx)
}

func (s *clientWishlistService) withLock(productID int64, fn func() error) error {
	unlock := s.locks.Lock(productID)
	defer unlock()
	return fn()
}
