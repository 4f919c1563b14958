package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the fixed per-request timeout.
	DefaultTimeout = 25 * time.Second

	// RateLimit stays well inside the polite-pool guidance.
	RateLimit = 2.0

	// userAgent identifies this tool to Crossref. The polite pool asks
	// for a contact address in the UA string.
	userAgent = "NRG-bibliography-metadata-watch/1.0"
)

// Client is a rate-limited HTTP client for the Crossref works API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
	timeout    time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithMailto sets the polite-pool contact address.
func WithMailto(addr string) ClientOption {
	return func(c *Client) {
		if addr != "" {
			c.mailto = addr
		}
	}
}

// WithTimeout sets the per-request timeout. It applies to whichever
// HTTP client the Client ends up with, regardless of option order.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a new Crossref works client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	// Check for a contact address in the environment
	if addr := os.Getenv("CROSSREF_MAILTO"); addr != "" {
		c.mailto = addr
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}

	return c
}

// GetWork fetches the Crossref record for a DOI.
func (c *Client) GetWork(ctx context.Context, doi string) (*Work, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/works/"+doi, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", doi, err)
	}
	req.Header.Set("User-Agent", c.userAgentString())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d for %s", ErrAPIError, resp.StatusCode, doi)
	}

	var body struct {
		Status  string `json:"status"`
		Message *Work  `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding Crossref response for %s: %w", doi, err)
	}
	if body.Message == nil {
		return nil, ErrNotFound
	}
	return body.Message, nil
}

func (c *Client) userAgentString() string {
	if c.mailto == "" {
		return userAgent
	}
	return fmt.Sprintf("%s (mailto:%s)", userAgent, c.mailto)
}
