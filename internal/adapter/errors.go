package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	// ErrServerError matches every 5xx response, including the specific ones above.
	ErrServerError = errors.New("catalog server error")

	ErrInvalidCatalogResponse = errors.New("invalid catalog response")
)
