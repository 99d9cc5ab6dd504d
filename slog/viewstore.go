package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ocfl/ocfl"
)

// Ensure LoggingViewStore implements ocfl.ViewStore.
var _ ocfl.ViewStore = (*LoggingViewStore)(nil)

// LoggingViewStore wraps a ViewStore with logging. The cache swallows store
// failures, so this is where unreadable or unwritable caches show up.
type LoggingViewStore struct {
	next   ocfl.ViewStore
	logger *slog.Logger
}

// NewLoggingViewStore creates a new LoggingViewStore.
func NewLoggingViewStore(next ocfl.ViewStore, logger *slog.Logger) *LoggingViewStore {
	return &LoggingViewStore{next: next, logger: logger}
}

// FindView delegates to the wrapped store and logs the view's age.
func (s *LoggingViewStore) FindView(ctx context.Context, kind ocfl.ViewKind) (view *ocfl.View, err error) {
	defer func(begin time.Time) {
		var age time.Duration
		if view != nil {
			age = time.Since(view.ProducedAt)
		}
		logCall(ctx, s.logger, "cache read", err,
			"kind", kind,
			"age", age,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindView(ctx, kind)
}

// SaveView delegates to the wrapped store.
func (s *LoggingViewStore) SaveView(ctx context.Context, view *ocfl.View) (err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "cache write", err,
			"kind", view.Kind,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SaveView(ctx, view)
}

// DeleteViews delegates to the wrapped store.
func (s *LoggingViewStore) DeleteViews(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "cache delete", err,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.DeleteViews(ctx)
}
