package ocfl

// ExtractResult holds the main content of an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main content as HTML with navigation,
	// footers and sidebars removed.
	ContentHTML string
}

// Extractor isolates the main content of a fetched page before it is
// converted into the directory document.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
