package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ocfl/ocfl"
)

// Ensure LoggingDirectoryService implements ocfl.DirectoryService.
var _ ocfl.DirectoryService = (*LoggingDirectoryService)(nil)

// LoggingDirectoryService wraps a DirectoryService with logging.
type LoggingDirectoryService struct {
	next   ocfl.DirectoryService
	logger *slog.Logger
}

// NewLoggingDirectoryService creates a new LoggingDirectoryService.
func NewLoggingDirectoryService(next ocfl.DirectoryService, logger *slog.Logger) *LoggingDirectoryService {
	return &LoggingDirectoryService{next: next, logger: logger}
}

func (s *LoggingDirectoryService) SearchFuzzy(ctx context.Context, query string) (entries []ocfl.Entry, err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "directory search", err,
			"query", query,
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchFuzzy(ctx, query)
}

func (s *LoggingDirectoryService) SearchRegex(ctx context.Context, pattern string) (entries []ocfl.Entry, err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "directory regex", err,
			"pattern", pattern,
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchRegex(ctx, pattern)
}

func (s *LoggingDirectoryService) BrowseCategories(ctx context.Context) (counts ocfl.CategoryCounts, err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "directory browse", err,
			"categories", len(counts),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.BrowseCategories(ctx)
}

func (s *LoggingDirectoryService) ListAll(ctx context.Context) (categories []ocfl.Category, err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "directory list", err,
			"categories", len(categories),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ListAll(ctx)
}

func (s *LoggingDirectoryService) LookupFlat(ctx context.Context, query string) (entries []ocfl.Entry, err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "phone lookup", err,
			"query", query,
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.LookupFlat(ctx, query)
}

func (s *LoggingDirectoryService) FindCategory(ctx context.Context, name string) (category *ocfl.Category, err error) {
	defer func(begin time.Time) {
		var resolved string
		if category != nil {
			resolved = category.Name
		}
		logCall(ctx, s.logger, "category lookup", err,
			"name", name,
			"resolved", resolved,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindCategory(ctx, name)
}
