// Package readability extracts the main content of a page with the
// Readability algorithm, as an alternative to trafilatura for pages where
// it keeps too little of a directory listing.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/ocfl/ocfl"
)

// Ensure Extractor implements ocfl.Extractor at compile time.
var _ ocfl.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*ocfl.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ocfl.Errorf(ocfl.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, ocfl.Errorf(ocfl.EINVALID, "failed to parse HTML: %v", err)
	}

	return &ocfl.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
