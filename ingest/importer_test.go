package ingest_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/ingest"
	"github.com/ocfl/ocfl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markdown = "## Utilities\n\n### Solid Waste\n\nPhone: (407) 836-6601\n"

type invalidator struct{ calls int }

func (i *invalidator) Invalidate(_ context.Context) { i.calls++ }

// newImporter returns an Importer whose collaborators succeed, recording
// the written document in written.
func newImporter(written *string) *ingest.Importer {
	return &ingest.Importer{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ url.Values) (string, error) {
				return "<html><body><main>directory</main></body></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string) (*ocfl.ExtractResult, error) {
				return &ocfl.ExtractResult{Title: "County Directory", ContentHTML: "<main>directory</main>"}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return markdown, nil
			},
		},
		Writer: &mock.SourceWriter{
			WriteSourceFn: func(_ context.Context, content string) error {
				*written = content
				return nil
			},
		},
		RetryDelays: []time.Duration{0},
	}
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("writes the converted page with its title", func(t *testing.T) {
		t.Parallel()

		var written string
		cache := &invalidator{}
		imp := newImporter(&written)
		imp.Cache = cache

		result, err := imp.Import(context.Background(), "https://www.ocfl.net/directory")

		require.NoError(t, err)
		assert.Equal(t, "# County Directory\n\n"+markdown, written)
		assert.Equal(t, &ingest.Result{
			Title:      "County Directory",
			Bytes:      len(written),
			Entries:    1,
			Categories: 1,
		}, result)
		assert.Equal(t, 1, cache.calls)
	})

	t.Run("keeps an existing title heading", func(t *testing.T) {
		t.Parallel()

		var written string
		imp := newImporter(&written)
		imp.Converter = &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "# Directory\n\n" + markdown, nil
			},
		}

		_, err := imp.Import(context.Background(), "https://www.ocfl.net/directory")

		require.NoError(t, err)
		assert.Equal(t, "# Directory\n\n"+markdown, written)
	})

	t.Run("rejects a page without entries", func(t *testing.T) {
		t.Parallel()

		var written string
		imp := newImporter(&written)
		imp.Converter = &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "Page not found.\n", nil
			},
		}

		_, err := imp.Import(context.Background(), "https://www.ocfl.net/missing")

		assert.Equal(t, ocfl.EINVALID, ocfl.ErrorCode(err))
		assert.Empty(t, written)
	})

	t.Run("rejects a page without main content", func(t *testing.T) {
		t.Parallel()

		var written string
		imp := newImporter(&written)
		imp.Extractor = &mock.Extractor{
			ExtractFn: func(_ string) (*ocfl.ExtractResult, error) {
				return &ocfl.ExtractResult{}, nil
			},
		}

		_, err := imp.Import(context.Background(), "https://www.ocfl.net/empty")

		assert.Equal(t, ocfl.EINVALID, ocfl.ErrorCode(err))
	})

	t.Run("retries failed fetches", func(t *testing.T) {
		t.Parallel()

		var written string
		var attempts int
		imp := newImporter(&written)
		imp.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ url.Values) (string, error) {
				attempts++
				if attempts == 1 {
					return "", errors.New("HTTP 503")
				}
				return "<html></html>", nil
			},
		}

		_, err := imp.Import(context.Background(), "https://www.ocfl.net/directory")

		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("returns the last fetch error", func(t *testing.T) {
		t.Parallel()

		var written string
		imp := newImporter(&written)
		imp.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ url.Values) (string, error) {
				return "", errors.New("HTTP 404")
			},
		}

		_, err := imp.Import(context.Background(), "https://www.ocfl.net/directory")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
		assert.Empty(t, written)
	})
}
