package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ocfl/ocfl"
)

// Ensure LinkResolver implements ocfl.Extractor at compile time.
var _ ocfl.Extractor = (*LinkResolver)(nil)

// LinkResolver wraps an Extractor and rewrites relative href attributes in
// the extracted content to absolute URLs, so the directory document only
// carries links the extractors recognize.
type LinkResolver struct {
	next ocfl.Extractor
	base *url.URL
}

// NewLinkResolver creates a LinkResolver resolving against baseURL.
func NewLinkResolver(next ocfl.Extractor, baseURL string) (*LinkResolver, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, ocfl.Errorf(ocfl.EINVALID, "invalid base URL %q", baseURL)
	}
	return &LinkResolver{next: next, base: base}, nil
}

// Extract delegates to the wrapped extractor and resolves links in its
// content.
func (r *LinkResolver) Extract(html string) (*ocfl.ExtractResult, error) {
	result, err := r.next.Extract(html)
	if err != nil {
		return nil, err
	}
	if result.ContentHTML == "" {
		return result, nil
	}

	resolved, err := ResolveLinks(result.ContentHTML, r.base)
	if err != nil {
		return nil, err
	}
	return &ocfl.ExtractResult{Title: result.Title, ContentHTML: resolved}, nil
}

// ResolveLinks rewrites relative href attributes in an HTML fragment
// against base. Fragment-only, mailto:, tel: and javascript: links are
// left untouched.
func ResolveLinks(fragment string, base *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", ocfl.Errorf(ocfl.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if resolved := resolveURL(base, href); resolved != "" {
			sel.SetAttr("href", resolved)
		}
	})

	return doc.Find("body").Html()
}

// resolveURL resolves a relative URL against a base URL. Returns an empty
// string for links that should be kept as written.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil || ref.IsAbs() {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
