package source

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Urdemonlord/mangagueh/internal/adapter"
	"github.com/Urdemonlord/mangagueh/internal/adapter/source/mangadex"
	"github.com/Urdemonlord/mangagueh/internal/domain"
)

// SourceConfig contains the configuration needed to create a catalog client
type SourceConfig struct {
	APIURL    string
	CDNURL    string
	SiteURL   string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient replaces the default transport (tests, proxies)
	HTTPClient mangadex.HTTPDoer
}

// NewCatalog creates the catalog repository.
// This factory keeps the TUI and services unaware of the concrete backend.
func NewCatalog(cfg *SourceConfig, logger *slog.Logger) (domain.CatalogRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	for name, raw := range map[string]string{"api_url": cfg.APIURL, "cdn_url": cfg.CDNURL, "site_url": cfg.SiteURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid catalog %s: %q", name, raw)
		}
	}

	doer := cfg.HTTPClient
	if doer == nil && cfg.Timeout > 0 {
		doer = &http.Client{Timeout: cfg.Timeout}
	}

	return mangadex.NewClient(cfg.APIURL, logger,
		mangadex.WithHTTPClient(doer),
		mangadex.WithCDNURL(cfg.CDNURL),
		mangadex.WithSiteURL(cfg.SiteURL),
		mangadex.WithUserAgent(cfg.UserAgent),
	), nil
}

// NewCatalogFromConfig creates a catalog repository from the application config
func NewCatalogFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogRepository, error) {
	return NewCatalog(&SourceConfig{
		APIURL:    cfg.Catalog.APIURL,
		CDNURL:    cfg.Catalog.CDNURL,
		SiteURL:   cfg.Catalog.SiteURL,
		UserAgent: cfg.Catalog.UserAgent,
		Timeout:   cfg.Catalog.RequestTimeout,
	}, logger)
}
