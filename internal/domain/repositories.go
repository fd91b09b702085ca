package domain

import (
	"context"
)

// CatalogRepository provides access to the remote manga catalog
type CatalogRepository interface {
	// ListManga returns one page of titles for the given parameters.
	// Any failure is reported as an error wrapping ErrCatalogUnavailable.
	ListManga(ctx context.Context, params ListParams) (*PageResult, error)
}
