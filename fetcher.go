package ocfl

import (
	"context"
	"net/url"
)

// Fetcher retrieves a remote resource for the lookup commands and for
// importing the directory document. It is never used by the directory
// core, which only reads local text.
type Fetcher interface {
	// Fetch performs a GET request for rawURL with params merged into its
	// query string and returns the response body (JSON or HTML).
	// Transport failures and non-2xx statuses are returned as errors.
	Fetch(ctx context.Context, rawURL string, params url.Values) (body string, err error)

	// Close releases any held resources.
	Close() error
}
