// Package fetch provides the HTTP retrieval layer for the city site.
//
// The fetch package wraps http.Client with per-request timeouts and decodes
// response bodies using the server-advertised or content-sniffed character
// encoding. The city site serves Japanese pages whose encoding must not be
// assumed to be UTF-8.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

const UserAgent = "gomi-navi/1.0 (github.com/tkohara/gomi-navi)"

// Result is the outcome of a single GET. Transport failures, bad statuses
// and successes stay distinguishable here so callers can log what actually
// went wrong before collapsing failures to an empty result.
type Result struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

// OK reports whether the fetch succeeded with a 2xx status.
func (r Result) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Reason describes the failure for logging. Empty for successful results.
func (r Result) Reason() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	if !r.OK() {
		return fmt.Sprintf("status %d", r.StatusCode)
	}
	return ""
}

// Client performs GET requests with bounded timeouts.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a Client. The per-request timeout is supplied on each Get call
// rather than on the underlying http.Client, since different pages tolerate
// different bounds.
func New() *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  UserAgent,
	}
}

// Get fetches url with the given timeout and returns the decoded body.
// It never blocks longer than the timeout and never panics; all failures
// are reported through the Result.
func (c *Client) Get(ctx context.Context, url string, timeout time.Duration) Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{URL: url, Err: fmt.Errorf("fetching page: %w", err)}
	}
	defer resp.Body.Close()

	// Decode using the Content-Type charset when present, sniffing the
	// body otherwise.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return Result{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("detecting encoding: %w", err)}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return Result{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}

	return Result{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
}
