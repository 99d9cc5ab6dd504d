package main

import (
	"context"
	"log/slog"

	"github.com/ocfl/ocfl/fsnotify"
	"github.com/ocfl/ocfl/mcp"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. Parsed views are dropped whenever the
// directory document changes, so a long-running server never answers from
// an outdated document.
func (c *ServeCmd) Run(deps *Dependencies) error {
	watcher := fsnotify.NewWatcher(deps.SourcePath, deps.Cache.Invalidate, fsnotify.WithLogger(deps.Logger))
	server := mcp.NewServer(deps.Directory)

	deps.Logger.Info("serving directory tools on stdio", "directory", deps.SourcePath)
	return ServeWithWatcher(deps.Ctx, watcher, server.Serve, deps.Logger)
}

// DocumentWatcher runs until its context is cancelled.
type DocumentWatcher interface {
	Run(ctx context.Context) error
}

// ServeWithWatcher runs serve alongside watcher and returns serve's error.
// A watcher that cannot start is logged and serving continues without it.
// The watcher is stopped before ServeWithWatcher returns.
func ServeWithWatcher(ctx context.Context, watcher DocumentWatcher, serve func(context.Context) error, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		if err := watcher.Run(gctx); err != nil {
			logger.Warn("document watch disabled", "err", err)
		}
		return nil
	})
	g.Go(func() error {
		// Stdio serving may return without observing gctx.
		defer cancel()
		return serve(gctx)
	})
	return g.Wait()
}
