package ocfl

// Converter converts HTML into the Markdown dialect read by the directory
// extractors: ## categories, ### entries, pipe tables and bullet lists.
type Converter interface {
	Convert(html string) (string, error)
}
