// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote storefront catalog API.
//
// The primary abstraction is [CatalogAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPCatalogAdapter]) built on resty.
//
// Remote product shapes vary between catalog versions; they are normalised
// into [models.Product] at this edge so nothing past the adapter has to care.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrServerError] for any 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cart-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter reads the remote product catalog.
type CatalogAdapter interface {
	// ListProducts fetches every product the catalog exposes, already
	// normalised. Remote entries that cannot be normalised (no id, no name,
	// no price anywhere) are skipped.
	ListProducts(ctx context.Context) ([]models.Product, error)
}
