// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cart-keeper/internal/app"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
)

// errorHumanizer turns service errors into status-line text.
type errorHumanizer func(error) string

func newErrorHumanizer(isRetryable func(error) bool) errorHumanizer {
	return func(err error) string {
		return humanizeError(err, isRetryable)
	}
}

func humanizeError(err error, isRetryable func(error) bool) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidProduct):
		return app.MsgInvalidProduct
	case isNetworkError(err):
		return app.MsgNetworkUnavailable
	case errors.Is(err, service.ErrCatalogUnavailable):
		return app.MsgCatalogUnavailable
	case isRetryable != nil && isRetryable(err):
		return app.MsgStorageBusy
	case errors.Is(err, store.ErrTransactionFailure), errors.Is(err, store.ErrStorageUnavailable):
		return app.MsgStorageFailure
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
