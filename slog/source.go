package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ocfl/ocfl"
)

// Ensure LoggingSourceLoader implements ocfl.SourceLoader.
var _ ocfl.SourceLoader = (*LoggingSourceLoader)(nil)

// LoggingSourceLoader wraps a SourceLoader with logging.
type LoggingSourceLoader struct {
	next   ocfl.SourceLoader
	logger *slog.Logger
}

// NewLoggingSourceLoader creates a new LoggingSourceLoader.
func NewLoggingSourceLoader(next ocfl.SourceLoader, logger *slog.Logger) *LoggingSourceLoader {
	return &LoggingSourceLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the document size.
func (s *LoggingSourceLoader) Load(ctx context.Context) (text string, err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "source load", err,
			"bytes", len(text),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Load(ctx)
}
