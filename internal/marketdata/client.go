// Package marketdata fetches fund NAVs, stock quotes and news headlines from
// public market data APIs.
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"financogram/internal/logger"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"

var (
	// ErrNotFound means the upstream has no data for the requested key.
	ErrNotFound = errors.New("not found")
	// ErrMalformed means the upstream answered with a payload that could not be parsed.
	ErrMalformed = errors.New("malformed payload")
)

// FetchError represents a failed fetch for a specific key (scheme code,
// ticker or query) from a given source.
type FetchError struct {
	Source string
	Key    string
	Err    error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: fetching %s: %v", e.Source, e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error { return e.Err }

// Option configures a market data client.
type Option func(*client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		burst := max(1, int(perSecond))
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *client) {
		if log != nil {
			c.log = log
		}
	}
}

// client holds the plumbing shared by every upstream.
type client struct {
	source     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	header     http.Header
	log        *zap.SugaredLogger
}

func newClient(source, baseURL string, opts []Option) client {
	c := client{
		source:     source,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		header:     http.Header{"User-Agent": []string{userAgent}},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = logger.Get()
	}
	return c
}

// getJSON performs a rate-limited GET of baseURL+path and decodes the JSON
// body into out. Failures are returned as *FetchError keyed by key.
func (c *client) getJSON(ctx context.Context, key, path string, query url.Values, out any) error {
	fail := func(err error) error {
		return &FetchError{Source: c.source, Key: key, Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fail(fmt.Errorf("rate limiter: %w", err))
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fail(fmt.Errorf("building request: %w", err))
	}
	for k, v := range c.header {
		req.Header[k] = v
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(fmt.Errorf("http request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debugw("Market data request", "source", c.source, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fail(ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fail(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	return nil
}
