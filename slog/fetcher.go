package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/ocfl/ocfl"
)

// Ensure LoggingFetcher implements ocfl.Fetcher.
var _ ocfl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   ocfl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ocfl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string, params url.Values) (body string, err error) {
	defer func(begin time.Time) {
		logCall(ctx, f.logger, "fetch", err,
			"url", rawURL,
			"params", params.Encode(),
			"bytes", len(body),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL, params)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
