// Package directory answers queries against the parsed directory document.
// It ties the source loader, the view cache, the extractors in parse and the
// rankers in search together behind ocfl.DirectoryService.
package directory

import (
	"context"
	"strings"

	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/cache"
	"github.com/ocfl/ocfl/parse"
	"github.com/ocfl/ocfl/search"
	"github.com/sahilm/fuzzy"
)

// CustomerService is the entry answered directly for the "311" lookup.
var CustomerService = ocfl.Entry{
	Name:  "311 Customer Service",
	Phone: "(407) 836-3111",
}

// Compile-time interface verification.
var _ ocfl.DirectoryService = (*Service)(nil)

// Service implements ocfl.DirectoryService.
type Service struct {
	loader ocfl.SourceLoader
	cache  *cache.Cache
}

// NewService creates a new Service reading the document through loader and
// keeping its parsed views in c.
func NewService(loader ocfl.SourceLoader, c *cache.Cache) *Service {
	return &Service{loader: loader, cache: c}
}

// SearchFuzzy ranks flat entries against query.
func (s *Service) SearchFuzzy(ctx context.Context, query string) ([]ocfl.Entry, error) {
	entries, err := s.flat(ctx)
	if err != nil {
		return nil, err
	}
	return search.Fuzzy(entries, query), nil
}

// SearchRegex filters flat entries by pattern.
func (s *Service) SearchRegex(ctx context.Context, pattern string) ([]ocfl.Entry, error) {
	entries, err := s.flat(ctx)
	if err != nil {
		return nil, err
	}
	return search.Regex(entries, pattern)
}

// BrowseCategories counts the entries of every category.
func (s *Service) BrowseCategories(ctx context.Context) (ocfl.CategoryCounts, error) {
	categories, err := s.categorized(ctx)
	if err != nil {
		return nil, err
	}
	return ocfl.CountCategories(categories), nil
}

// ListAll returns the categorized view.
func (s *Service) ListAll(ctx context.Context) ([]ocfl.Category, error) {
	return s.categorized(ctx)
}

// LookupFlat answers "311" with CustomerService and everything else with
// a fuzzy search.
func (s *Service) LookupFlat(ctx context.Context, query string) ([]ocfl.Entry, error) {
	if strings.TrimSpace(query) == "311" {
		return []ocfl.Entry{CustomerService}, nil
	}
	return s.SearchFuzzy(ctx, query)
}

// FindCategory resolves name against the category names. An exact match
// wins, then a case-insensitive one, then the best subsequence match.
func (s *Service) FindCategory(ctx context.Context, name string) (*ocfl.Category, error) {
	categories, err := s.categorized(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ocfl.Errorf(ocfl.EINVALID, "category name required")
	}

	found := func(i int) (*ocfl.Category, error) {
		c := categories[i]
		return &c, nil
	}
	for i := range categories {
		if categories[i].Name == name {
			return found(i)
		}
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return found(i)
		}
	}
	if matches := fuzzy.FindFrom(name, categoryNames(categories)); len(matches) > 0 {
		return found(matches[0].Index)
	}

	return nil, ocfl.Errorf(ocfl.ENOTFOUND, "category %q not found", name)
}

// categoryNames adapts categories to fuzzy.Source.
type categoryNames []ocfl.Category

func (c categoryNames) String(i int) string { return c[i].Name }
func (c categoryNames) Len() int            { return len(c) }

func (s *Service) flat(ctx context.Context) ([]ocfl.Entry, error) {
	v, err := s.view(ctx, ocfl.ViewFlat, func(text string) *ocfl.View {
		return &ocfl.View{Entries: parse.Flat(text)}
	})
	if v == nil || err != nil {
		return nil, err
	}
	return v.Entries, nil
}

func (s *Service) categorized(ctx context.Context) ([]ocfl.Category, error) {
	v, err := s.view(ctx, ocfl.ViewCategorized, func(text string) *ocfl.View {
		return &ocfl.View{Categories: parse.Categorized(text)}
	})
	if v == nil || err != nil {
		return nil, err
	}
	return v.Categories, nil
}

// view returns the cached view of kind, building it from the current
// document when needed. A missing document yields a nil view and no error;
// nothing is cached for it so the document is picked up once it appears.
func (s *Service) view(ctx context.Context, kind ocfl.ViewKind, extract func(string) *ocfl.View) (*ocfl.View, error) {
	v, err := s.cache.GetOrBuild(ctx, kind, func(ctx context.Context) (*ocfl.View, error) {
		text, err := s.loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		return extract(text), nil
	})
	if ocfl.ErrorCode(err) == ocfl.ENOTFOUND {
		return nil, nil
	}
	return v, err
}
