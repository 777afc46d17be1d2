package mock

import (
	"context"

	"github.com/shusiwoo/scourt"
)

var _ scourt.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scourt.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
