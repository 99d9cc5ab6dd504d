package goquery_test

import (
	"strings"
	"testing"

	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head><title>Phone Directory | Orange County Government</title></head>
<body>
<header><a href="/">Home</a></header>
<nav><a href="/services">Services</a></nav>
<div id="content">
<h2>Utilities</h2>
<h3>Solid Waste</h3>
<p>Phone: (407) 836-6601</p>
<script>track();</script>
</div>
<div class="sidebar">Popular links</div>
<footer>Copyright 2026</footer>
</body>
</html>`

func TestSelectorExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns matched content with title", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSelectorExtractor("#content").Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Phone Directory | Orange County Government", result.Title)
		assert.Contains(t, result.ContentHTML, "<h3>Solid Waste</h3>")
		assert.Contains(t, result.ContentHTML, "(407) 836-6601")
		assert.NotContains(t, result.ContentHTML, "Popular links")
	})

	t.Run("strips page chrome inside the match", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSelectorExtractor("body").Extract(page)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "track()")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026")
		assert.NotContains(t, result.ContentHTML, "Services")
		assert.Contains(t, result.ContentHTML, "Popular links")
	})

	t.Run("keeps everything with an empty strip selector", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSelectorExtractor("#content", goquery.WithStripSelector("")).Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "track()")
	})

	t.Run("concatenates every match in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><section class="dept">Animal Services</section><p>x</p><section class="dept">Library</section></body></html>`

		result, err := goquery.NewSelectorExtractor(".dept").Extract(html)

		require.NoError(t, err)
		assert.Less(t, strings.Index(result.ContentHTML, "Animal Services"), strings.Index(result.ContentHTML, "Library"))
	})

	t.Run("falls back to the first heading for the title", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>County Directory</h1><main>Body</main></body></html>`

		result, err := goquery.NewSelectorExtractor("main").Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "County Directory", result.Title)
	})

	t.Run("returns not found when nothing matches", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSelectorExtractor("#missing").Extract(page)

		assert.Equal(t, ocfl.ENOTFOUND, ocfl.ErrorCode(err))
	})

	t.Run("requires a selector", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSelectorExtractor(" ").Extract(page)

		assert.Equal(t, ocfl.EINVALID, ocfl.ErrorCode(err))
	})
}
