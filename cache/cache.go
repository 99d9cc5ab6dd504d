// Package cache keeps parsed directory views fresh for a fixed window so the
// source document is not re-parsed on every query.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/ocfl/ocfl"
)

// DefaultTTL is the default freshness window.
const DefaultTTL = 24 * time.Hour

// BuildFunc produces a view from the current source document.
type BuildFunc func(ctx context.Context) (*ocfl.View, error)

// Cache returns fresh views from memory or from a ViewStore, and rebuilds
// them once they are older than the freshness window.
//
// The store is best-effort: read and write failures are treated as a miss
// and are never returned to the caller. A nil store keeps views in memory
// only. Cache is safe for concurrent use; one rebuild runs at a time.
type Cache struct {
	store ocfl.ViewStore
	ttl   time.Duration
	now   func() time.Time

	mu    sync.RWMutex
	views map[ocfl.ViewKind]*ocfl.View
	stale map[ocfl.ViewKind]bool
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the freshness window. Defaults to DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.ttl = d
	}
}

// WithClock sets the time source. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a Cache backed by store, which may be nil.
func New(store ocfl.ViewStore, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		ttl:   DefaultTTL,
		now:   time.Now,
		views: make(map[ocfl.ViewKind]*ocfl.View),
		stale: make(map[ocfl.ViewKind]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrBuild returns the fresh view of kind, calling build only when no
// fresh view exists in memory or in the store. A built view is stamped with
// the current time and saved. Errors from build are returned unchanged and
// nothing is cached.
func (c *Cache) GetOrBuild(ctx context.Context, kind ocfl.ViewKind, build BuildFunc) (*ocfl.View, error) {
	c.mu.RLock()
	v := c.views[kind]
	c.mu.RUnlock()
	if c.fresh(v) {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have rebuilt while we waited.
	if v := c.views[kind]; c.fresh(v) {
		return v, nil
	}

	if c.store != nil && !c.stale[kind] {
		if v, err := c.store.FindView(ctx, kind); err == nil && v.Kind == kind && c.fresh(v) {
			c.views[kind] = v
			return v, nil
		}
	}

	v, err := build(ctx)
	if err != nil {
		return nil, err
	}
	v.Kind = kind
	v.ProducedAt = c.now()

	if c.store != nil {
		_ = c.store.SaveView(ctx, v)
	}
	c.views[kind] = v
	delete(c.stale, kind)
	return v, nil
}

// Invalidate forces the next GetOrBuild of every kind to rebuild, ignoring
// both memory and the store. Stored views are deleted so other processes
// sharing the store rebuild too.
func (c *Cache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.views)
	c.stale[ocfl.ViewFlat] = true
	c.stale[ocfl.ViewCategorized] = true
	if c.store != nil {
		_ = c.store.DeleteViews(ctx)
	}
}

func (c *Cache) fresh(v *ocfl.View) bool {
	if v == nil {
		return false
	}
	return c.now().Sub(v.ProducedAt) < c.ttl
}

// Key derives a stable, file-name safe identity for a source document path.
func Key(sourcePath string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(sourcePath))
}
