// Package ingest builds the directory document from a county web page: it
// fetches the page, isolates its main content, converts it to Markdown and
// replaces the document on disk.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/parse"
)

// Invalidator drops parsed views of the document being replaced.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Importer replaces the directory document with the content of a web page.
type Importer struct {
	Fetcher     ocfl.Fetcher
	Extractor   ocfl.Extractor
	Converter   ocfl.Converter
	Writer      ocfl.SourceWriter
	Cache       Invalidator
	RetryDelays []time.Duration
}

// Result summarizes an import.
type Result struct {
	Title      string `json:"title"`
	Bytes      int    `json:"bytes"`
	Entries    int    `json:"entries"`
	Categories int    `json:"categories"`
}

// Import fetches rawURL and writes it as the new directory document. A page
// from which neither view yields any entry is rejected with EINVALID and
// the existing document is kept.
func (i *Importer) Import(ctx context.Context, rawURL string) (*Result, error) {
	delays := i.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, rawURL, i.Fetcher.Fetch, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	extracted, err := i.Extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		return nil, ocfl.Errorf(ocfl.EINVALID, "no main content found at %s", rawURL)
	}

	markdown, err := i.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	markdown = withTitle(markdown, extracted.Title)

	result := &Result{
		Title:      extracted.Title,
		Bytes:      len(markdown),
		Entries:    len(parse.Flat(markdown)),
		Categories: len(parse.Categorized(markdown)),
	}
	if result.Entries == 0 && result.Categories == 0 {
		return nil, ocfl.Errorf(ocfl.EINVALID, "no directory entries found at %s", rawURL)
	}

	if err := i.Writer.WriteSource(ctx, markdown); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	if i.Cache != nil {
		i.Cache.Invalidate(ctx)
	}

	return result, nil
}

// withTitle prepends a level-1 title unless the document already opens
// with one.
func withTitle(markdown, title string) string {
	title = strings.TrimSpace(title)
	if title == "" || strings.HasPrefix(markdown, "# ") {
		return markdown
	}
	return "# " + title + "\n\n" + markdown
}
