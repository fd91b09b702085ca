package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable covers every failed listing fetch: transport errors,
	// non-2xx statuses and undecodable bodies alike
	ErrCatalogUnavailable = errors.New("manga catalog is unavailable")

	// ErrUnknownRoute indicates a path that no view is mounted at
	ErrUnknownRoute = errors.New("unknown route")
)
