package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-cart-keeper/internal/config"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/metrics"
	"github.com/MKhiriev/go-cart-keeper/internal/utils"
	"github.com/MKhiriev/go-cart-keeper/models"
)

const (
	productsPath    = "/api/products"
	requestIDHeader = "X-Request-ID"
)

type httpCatalogAdapter struct {
	client     *utils.HTTPClient
	requestIDs *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP/JSON implementation of
// [CatalogAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCatalogAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpCatalogAdapter{
		client:     client,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListProducts implements [CatalogAdapter]. Every request carries a fresh
// X-Request-ID so client and server logs can be correlated.
func (h *httpCatalogAdapter) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)
	requestID := h.requestIDs.Generate()

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		Get(productsPath)
	metrics.CatalogRequestDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		log.Err(err).
			Str("func", "httpCatalogAdapter.ListProducts").
			Str("request_id", requestID).
			Msg("catalog request failed")
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "httpCatalogAdapter.ListProducts").
			Str("request_id", requestID).
			Int("status", resp.StatusCode()).
			Msg("catalog responded with error")
		return nil, err
	}

	remote, err := decodeCatalog(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode list products response: %w", err)
	}

	products := make([]models.Product, 0, len(remote))
	for _, r := range remote {
		p, ok := r.toModel()
		if !ok {
			log.Warn().
				Str("func", "httpCatalogAdapter.ListProducts").
				Str("request_id", requestID).
				Int64("remote_id", r.ID).
				Msg("skipping catalog entry without id, name or price")
			continue
		}
		products = append(products, p)
	}

	return products, nil
}
