package mangadex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Urdemonlord/mangagueh/internal/domain"
)

const (
	DefaultAPIURL  = "https://api.mangadex.org"
	DefaultCDNURL  = "https://uploads.mangadex.org"
	DefaultSiteURL = "https://mangadex.org"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "MangaGueh/1.0"
)

// HTTPDoer is the subset of *http.Client the catalog client needs
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements domain.CatalogRepository for the MangaDex API
type Client struct {
	baseURL    string
	cdnURL     string
	siteURL    string
	userAgent  string
	httpClient HTTPDoer
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithCDNURL sets the origin cover images are served from
func WithCDNURL(cdnURL string) Option {
	return func(c *Client) {
		if cdnURL != "" {
			c.cdnURL = cdnURL
		}
	}
}

// WithSiteURL sets the origin detail pages are linked on
func WithSiteURL(siteURL string) Option {
	return func(c *Client) {
		if siteURL != "" {
			c.siteURL = siteURL
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a new MangaDex API client
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		cdnURL:    DefaultCDNURL,
		siteURL:   DefaultSiteURL,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EncodeListQuery renders listing parameters in the bracketed form the API expects,
// e.g. includes[]=cover_art&order[followedCount]=desc
func EncodeListQuery(params domain.ListParams) url.Values {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("offset", strconv.Itoa(params.Offset))
	for _, inc := range params.Includes {
		query.Add("includes[]", inc)
	}
	if params.OrderField != "" {
		query.Set(fmt.Sprintf("order[%s]", params.OrderField), params.OrderDirection)
	}
	if params.Title != "" {
		query.Set("title", params.Title)
	}
	return query
}

// doRequest performs a GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrCatalogUnavailable, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("mangadex request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", domain.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("mangadex request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	return body, nil
}

// ListManga returns one page of the catalog listing
func (c *Client) ListManga(ctx context.Context, params domain.ListParams) (*domain.PageResult, error) {
	body, err := c.doRequest(ctx, "/manga", EncodeListQuery(params))
	if err != nil {
		return nil, err
	}

	var resp MangaListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse response: %w", domain.ErrCatalogUnavailable, err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: response has no data field", domain.ErrCatalogUnavailable)
	}

	return MapPage(&resp, c.cdnURL, c.siteURL), nil
}
