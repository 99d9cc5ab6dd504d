// Package goquery isolates page content by CSS selector and rewrites
// relative links in extracted content, using PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ocfl/ocfl"
)

// DefaultStripSelector matches page chrome removed from selected content.
const DefaultStripSelector = "script, style, noscript, nav, header, footer, form, iframe, .breadcrumb, .skip-link"

// Ensure SelectorExtractor implements ocfl.Extractor at compile time.
var _ ocfl.Extractor = (*SelectorExtractor)(nil)

// SelectorExtractor extracts the elements matching a CSS selector, for
// pages whose main content the generic extractor misjudges.
type SelectorExtractor struct {
	selector string
	strip    string
}

// Option configures a SelectorExtractor.
type Option func(*SelectorExtractor)

// WithStripSelector sets the elements removed from matched content.
// Defaults to DefaultStripSelector; an empty selector keeps everything.
func WithStripSelector(s string) Option {
	return func(e *SelectorExtractor) {
		e.strip = s
	}
}

// NewSelectorExtractor creates a SelectorExtractor for selector.
func NewSelectorExtractor(selector string, opts ...Option) *SelectorExtractor {
	e := &SelectorExtractor{
		selector: selector,
		strip:    DefaultStripSelector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the outer HTML of every element matching the selector,
// in document order. Returns ENOTFOUND if nothing matches.
func (e *SelectorExtractor) Extract(html string) (*ocfl.ExtractResult, error) {
	if strings.TrimSpace(e.selector) == "" {
		return nil, ocfl.Errorf(ocfl.EINVALID, "CSS selector required")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ocfl.Errorf(ocfl.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(e.selector)
	if sel.Length() == 0 {
		return nil, ocfl.Errorf(ocfl.ENOTFOUND, "no elements match %q", e.selector)
	}
	if e.strip != "" {
		sel.Find(e.strip).Remove()
	}

	var b strings.Builder
	var outerErr error
	sel.Each(func(_ int, s *goquery.Selection) {
		if outerErr != nil {
			return
		}
		h, err := goquery.OuterHtml(s)
		if err != nil {
			outerErr = err
			return
		}
		b.WriteString(h)
		b.WriteString("\n")
	})
	if outerErr != nil {
		return nil, outerErr
	}

	return &ocfl.ExtractResult{
		Title:       pageTitle(doc),
		ContentHTML: b.String(),
	}, nil
}

// pageTitle returns the document title, falling back to the first h1.
func pageTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
