package ocfl

import "context"

// DirectoryService answers queries against the parsed directory.
// A missing directory document is not an error: every query then
// returns an empty result.
type DirectoryService interface {
	// SearchFuzzy ranks flat entries against a free-text query.
	// At most 15 entries are returned, best match first.
	SearchFuzzy(ctx context.Context, query string) ([]Entry, error)

	// SearchRegex returns flat entries matching a case-insensitive pattern,
	// in source order. Returns EINVALID if the pattern does not compile.
	SearchRegex(ctx context.Context, pattern string) ([]Entry, error)

	// BrowseCategories returns each category with its entry count.
	BrowseCategories(ctx context.Context) (CategoryCounts, error)

	// ListAll returns every category with its entries.
	ListAll(ctx context.Context) ([]Category, error)

	// LookupFlat is the phone lookup: a fuzzy search over the flat view
	// with well-known short numbers answered directly.
	LookupFlat(ctx context.Context, query string) ([]Entry, error)

	// FindCategory resolves a category by name, tolerating case and
	// abbreviations. Returns ENOTFOUND if no category matches.
	FindCategory(ctx context.Context, name string) (*Category, error)
}
