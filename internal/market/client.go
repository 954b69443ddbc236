// Package market fetches price quotes from the public market data API and
// summarizes them per city.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meur/crafthub/internal/models"
	"github.com/meur/crafthub/internal/obs"
	"golang.org/x/time/rate"
)

const maxErrorBody = 500

// PriceSource fetches quotes for a set of items in a set of locations
type PriceSource interface {
	FetchPrices(ctx context.Context, region string, itemIDs, locations []string) ([]models.PriceQuote, error)
}

// Client talks to the price API. One call to FetchPrices issues exactly one
// request; failures are returned as-is, without retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL sends every region to the same endpoint, e.g. a mirror or a
// test server
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithRateLimit spaces outbound requests to rps per second with the given
// burst. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a price API client
func NewClient(opts ...Option) *Client {
	c := &Client{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PricesURL builds the request URL for the given region endpoint
func (c *Client) PricesURL(endpoint string, itemIDs, locations []string) string {
	if c.baseURL != "" {
		endpoint = c.baseURL
	}
	return fmt.Sprintf("%s/stats/prices/%s?locations=%s&qualities=1",
		endpoint, joinEscaped(itemIDs), joinEscaped(locations))
}

func joinEscaped(parts []string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return strings.Join(escaped, ",")
}

// FetchPrices returns the current quotes of itemIDs in locations
func (c *Client) FetchPrices(ctx context.Context, region string, itemIDs, locations []string) ([]models.PriceQuote, error) {
	r, err := LookupRegion(region)
	if err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return []models.PriceQuote{}, nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: waiting for rate limiter: %v", ErrNetwork, err)
		}
	}

	reqURL := c.PricesURL(r.Endpoint, itemIDs, locations)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request for %s: %v", ErrNetwork, reqURL, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		obs.Logger.Error("price fetch failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response from %s: %v", ErrNetwork, reqURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		badErr := &BadResponseError{StatusCode: resp.StatusCode, URL: reqURL, Body: truncate(string(body))}
		obs.Logger.Error("price fetch returned non-success status", "url", reqURL, "status", resp.StatusCode)
		return nil, badErr
	}

	var quotes []models.PriceQuote
	if err := json.Unmarshal(body, &quotes); err != nil {
		return nil, fmt.Errorf("%w: decoding response from %s: %v (body: %s)", ErrBadResponse, reqURL, err, truncate(string(body)))
	}

	obs.Logger.Debug("prices fetched",
		"region", region,
		"items", len(itemIDs),
		"locations", len(locations),
		"quotes", len(quotes),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return quotes, nil
}

func truncate(s string) string {
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "... (truncated)"
	}
	return s
}
