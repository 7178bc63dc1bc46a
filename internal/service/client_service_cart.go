// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/metrics"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/internal/validators"
	"github.com/MKhiriev/go-cart-keeper/models"
)

type clientCartService struct {
	cartRepository store.CartRepository
	bus            *events.Bus
	validator      validators.Validator
	locks          *keyedMutex
}

// NewClientCartService creates a cart service on top of the storages' cart
// repository. Committed mutations are announced on bus as [events.CartChanged].
func NewClientCartService(storages *store.ClientStorages, bus *events.Bus) ClientCartService {
	return &clientCartService{
		cartRepository: storages.CartRepository,
		bus:            bus,
		validator:      validators.NewProductValidator(),
		locks:          newKeyedMutex(),
	}
}

func (s *clientCartService) GetQuantity(ctx context.Context, productID int64) (int64, error) {
	if err := s.validator.Validate(ctx, validators.ProductID(productID)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}

	return s.cartRepository.GetCartQuantity(ctx, productID)
}

func (s *clientCartService) SetQuantity(ctx context.Context, product models.Product, quantity int64) error {
	if err := s.validateProduct(ctx, product); err != nil {
		return err
	}
	if quantity < 1 {
		quantity = 1
	}

	return s.mutate(ctx, "set_quantity", product.ID, s.setter(product), func(int64) (int64, bool) {
		return quantity, true
	})
}

func (s *clientCartService) Increase(ctx context.Context, product models.Product) error {
	if err := s.validateProduct(ctx, product); err != nil {
		return err
	}

	return s.mutate(ctx, "increase", product.ID, s.setter(product), func(current int64) (int64, bool) {
		return current + 1, true
	})
}

// Decrease and Remove only need the product id; the cached product is left
// as it is.
func (s *clientCartService) Decrease(ctx context.Context, product models.Product) error {
	if err := s.validateProduct(ctx, product, validators.FieldProductID); err != nil {
		return err
	}

	return s.mutate(ctx, "decrease", product.ID, s.updater(product.ID), func(current int64) (int64, bool) {
		switch {
		case current == 0:
			return 0, false
		case current <= 1:
			return 0, true
		default:
			return current - 1, true
		}
	})
}

func (s *clientCartService) Remove(ctx context.Context, product models.Product) error {
	if err := s.validateProduct(ctx, product, validators.FieldProductID); err != nil {
		return err
	}

	return s.mutate(ctx, "remove", product.ID, s.updater(product.ID), func(int64) (int64, bool) {
		return 0, true
	})
}

func (s *clientCartService) Clear(ctx context.Context) error {
	err := s.cartRepository.ClearCart(ctx)
	metrics.CartMutationsTotal.WithLabelValues("clear", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("error clearing cart: %w", err)
	}

	s.bus.Publish(ctx, events.CartChanged)
	return nil
}

func (s *clientCartService) Lines(ctx context.Context) ([]models.CartLine, error) {
	return s.cartRepository.ListCartLines(ctx)
}

func (s *clientCartService) Summary(ctx context.Context) (models.CartSummary, error) {
	lines, err := s.cartRepository.ListCartLines(ctx)
	if err != nil {
		return models.CartSummary{}, fmt.Errorf("error listing cart lines: %w", err)
	}

	return models.SummarizeCart(lines), nil
}

// mutate runs a read-modify-write for productID under its lock. next maps the
// current quantity to the new one; returning false skips the write. The event
// is published after the lock is released so listeners may call back in.
func (s *clientCartService) mutate(ctx context.Context, operation string, productID int64, write writeFunc, next func(current int64) (int64, bool)) error {
	changed, err := s.apply(ctx, operation, productID, write, next)
	if err != nil || !changed {
		return err
	}

	s.bus.Publish(ctx, events.CartChanged)
	return nil
}

type writeFunc func(ctx context.Context, quantity int64) error

// setter writes through SetCartQuantity, refreshing the cached product.
func (s *clientCartService) setter(product models.Product) writeFunc {
	return func(ctx context.Context, quantity int64) error {
		return s.cartRepository.SetCartQuantity(ctx, product, quantity)
	}
}

func (s *clientCartService) updater(productID int64) writeFunc {
	return func(ctx context.Context, quantity int64) error {
		return s.cartRepository.UpdateCartQuantity(ctx, productID, quantity)
	}
}

func (s *clientCartService) apply(ctx context.Context, operation string, productID int64, write writeFunc, next func(current int64) (int64, bool)) (bool, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(productID)
	defer unlock()

	current, err := s.cartRepository.GetCartQuantity(ctx, productID)
	if err != nil {
		metrics.CartMutationsTotal.WithLabelValues(operation, metrics.ResultError).Inc()
		return false, fmt.Errorf("error reading cart quantity: %w", err)
	}

	quantity, ok := next(current)
	if !ok {
		log.Debug().
			Str("func", "clientCartService."+operation).
			Int64("product_id", productID).
			Msg("product not in cart, nothing to change")
		return false, nil
	}

	err = write(ctx, quantity)
	metrics.CartMutationsTotal.WithLabelValues(operation, metrics.Result(err)).Inc()
	if err != nil {
		return false, fmt.Errorf("error during cart %s: %w", operation, err)
	}

	log.Debug().
		Str("func", "clientCartService."+operation).
		Int64("product_id", productID).
		Int64("quantity", quantity).
		Msg("cart updated")

	return true, nil
}

func (s *clientCartService) validateProduct(ctx context.Context, product models.Product, fields ...string) error {
	if err := s.validator.Validate(ctx, product, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	return nil
}
