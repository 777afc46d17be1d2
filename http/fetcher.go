// Package http provides the HTTP client for the Supreme Court notice portal
// and the JSON API server exposed on top of it.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/shusiwoo/scourt"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// DefaultFetchTimeout is the default timeout for portal requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements scourt.Fetcher at compile time.
var _ scourt.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages from the portal. The portal serves EUC-KR encoded
// HTML; response bodies are decoded to UTF-8 before being returned.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for portal requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new portal Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the decoded HTML content at the given URL.
// Non-200 responses return an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	// The portal rejects requests without a browser-like session profile.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", scourt.Errorf(scourt.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(transform.NewReader(resp.Body, korean.EUCKR.NewDecoder()))
	if err != nil {
		return "", err
	}

	return string(body), nil
}
