package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Urdemonlord/mangagueh/internal/domain"
)

const defaultRequestTimeout = 30 * time.Second

// CatalogService fetches catalog pages for the list views
type CatalogService struct {
	repo    domain.CatalogRepository
	logger  *slog.Logger
	timeout time.Duration
}

// NewCatalogService creates a new catalog service.
// timeout bounds every page fetch; zero means the default.
func NewCatalogService(repo domain.CatalogRepository, logger *slog.Logger, timeout time.Duration) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &CatalogService{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
	}
}

// FetchPage derives the request for q and returns the matching page.
// Every failure, including a timeout, is returned wrapping domain.ErrCatalogUnavailable;
// cancellation by the caller is returned as the context error.
func (s *CatalogService) FetchPage(ctx context.Context, q domain.QueryState) (*domain.PageResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := domain.DeriveParams(q)
	start := time.Now()

	page, err := s.repo.ListManga(ctx, params)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Debug("catalog fetch cancelled", "filter", q.Filter.String(), "page", q.Page)
			return nil, context.Canceled
		}
		s.logger.Error("Error fetching manga",
			"filter", q.Filter.String(), "page", q.Page, "title", q.SearchText, "error", err)
		if !errors.Is(err, domain.ErrCatalogUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
		return nil, err
	}

	s.logger.Debug("catalog page loaded",
		"filter", q.Filter.String(), "page", q.Page, "items", len(page.Items),
		"total", page.Total, "elapsed", time.Since(start))
	return page, nil
}
