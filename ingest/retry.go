package ingest

import (
	"context"
	"net/url"
	"time"

	"github.com/ocfl/ocfl"
)

// FetchFunc is the signature of ocfl.Fetcher.Fetch.
type FetchFunc func(ctx context.Context, rawURL string, params url.Values) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches rawURL, retrying failed attempts after each
// of delays in turn. Invalid requests are not retried.
func FetchWithRetryDelays(ctx context.Context, rawURL string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx, rawURL, nil)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ocfl.ErrorCode(err) == ocfl.EINVALID || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
