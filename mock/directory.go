package mock

import (
	"context"

	"github.com/ocfl/ocfl"
)

var _ ocfl.DirectoryService = (*DirectoryService)(nil)

// DirectoryService is a mock implementation of ocfl.DirectoryService.
type DirectoryService struct {
	SearchFuzzyFn      func(ctx context.Context, query string) ([]ocfl.Entry, error)
	SearchRegexFn      func(ctx context.Context, pattern string) ([]ocfl.Entry, error)
	BrowseCategoriesFn func(ctx context.Context) (ocfl.CategoryCounts, error)
	ListAllFn          func(ctx context.Context) ([]ocfl.Category, error)
	LookupFlatFn       func(ctx context.Context, query string) ([]ocfl.Entry, error)
	FindCategoryFn     func(ctx context.Context, name string) (*ocfl.Category, error)
}

func (s *DirectoryService) SearchFuzzy(ctx context.Context, query string) ([]ocfl.Entry, error) {
	return s.SearchFuzzyFn(ctx, query)
}

func (s *DirectoryService) SearchRegex(ctx context.Context, pattern string) ([]ocfl.Entry, error) {
	return s.SearchRegexFn(ctx, pattern)
}

func (s *DirectoryService) BrowseCategories(ctx context.Context) (ocfl.CategoryCounts, error) {
	return s.BrowseCategoriesFn(ctx)
}

func (s *DirectoryService) ListAll(ctx context.Context) ([]ocfl.Category, error) {
	return s.ListAllFn(ctx)
}

func (s *DirectoryService) LookupFlat(ctx context.Context, query string) ([]ocfl.Entry, error) {
	return s.LookupFlatFn(ctx, query)
}

func (s *DirectoryService) FindCategory(ctx context.Context, name string) (*ocfl.Category, error) {
	return s.FindCategoryFn(ctx, name)
}
