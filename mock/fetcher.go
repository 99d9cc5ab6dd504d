package mock

import (
	"context"
	"net/url"

	"github.com/ocfl/ocfl"
)

var _ ocfl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ocfl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, rawURL string, params url.Values) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string, params url.Values) (string, error) {
	return f.FetchFn(ctx, rawURL, params)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
