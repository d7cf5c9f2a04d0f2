package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	BaseURL   = "https://docs.google.com/spreadsheets/d/"
	UserAgent = "lostfound-cli/1.0 (github.com/lostfound-tw/lostfound)"
	Timeout   = 30 * time.Second

	// maxBodySize caps how much of a response is read.
	maxBodySize = 16 << 20
)

// Client fetches gviz responses for spreadsheet tabs
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP timeout for every request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
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

// WithBaseURL points the client at a different host, mostly for tests
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// New creates a new Client instance
func New(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:   BaseURL,
		userAgent: UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL builds the gviz JSON query URL for one tab of a spreadsheet.
func URL(base, sheetID, sheetName string) string {
	q := url.Values{}
	q.Set("tqx", "out:json")
	q.Set("sheet", sheetName)
	return base + url.PathEscape(sheetID) + "/gviz/tq?" + q.Encode()
}

// Fetch returns the raw response text for a tab.
func (c *Client) Fetch(ctx context.Context, sheetID, sheetName string) (string, error) {
	target := URL(c.baseURL, sheetID, sheetName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{StatusCode: resp.StatusCode, URL: target}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(body), nil
}

// FetchTable fetches a tab and parses it into a Table.
func (c *Client) FetchTable(ctx context.Context, sheetID, sheetName string) (*Table, error) {
	text, err := c.Fetch(ctx, sheetID, sheetName)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}
