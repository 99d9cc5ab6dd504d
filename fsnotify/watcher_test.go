package fsnotify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ocfl/ocfl/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startWatcher runs a watcher on path and returns a channel receiving one
// value per reported change.
func startWatcher(t *testing.T, path string) <-chan struct{} {
	t.Helper()

	changes := make(chan struct{}, 10)
	w := fsnotify.NewWatcher(path, func(context.Context) {
		changes <- struct{}{}
	}, fsnotify.WithDebounce(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-errc)
	})

	// Give the watcher time to register before the test writes.
	time.Sleep(100 * time.Millisecond)
	return changes
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports writes to the watched file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "DIRECTORY.md")
		require.NoError(t, os.WriteFile(path, []byte("## Utilities\n"), 0644))
		changes := startWatcher(t, path)

		require.NoError(t, os.WriteFile(path, []byte("## Parks\n"), 0644))

		select {
		case <-changes:
		case <-time.After(5 * time.Second):
			t.Fatal("change not reported")
		}
	})

	t.Run("reports a file replaced by rename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "DIRECTORY.md")
		changes := startWatcher(t, path)

		tmp := filepath.Join(dir, "DIRECTORY.md.tmp")
		require.NoError(t, os.WriteFile(tmp, []byte("## Parks\n"), 0644))
		require.NoError(t, os.Rename(tmp, path))

		select {
		case <-changes:
		case <-time.After(5 * time.Second):
			t.Fatal("change not reported")
		}
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		changes := startWatcher(t, filepath.Join(dir, "DIRECTORY.md"))

		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

		select {
		case <-changes:
			t.Fatal("unexpected change reported")
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("returns an error for a missing directory", func(t *testing.T) {
		t.Parallel()

		w := fsnotify.NewWatcher(filepath.Join(t.TempDir(), "missing", "DIRECTORY.md"), func(context.Context) {})

		err := w.Run(context.Background())

		require.Error(t, err)
	})
}
