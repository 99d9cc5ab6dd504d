package mock

import (
	"context"

	"github.com/ocfl/ocfl"
)

var _ ocfl.ViewStore = (*ViewStore)(nil)

// ViewStore is a mock implementation of ocfl.ViewStore.
type ViewStore struct {
	FindViewFn    func(ctx context.Context, kind ocfl.ViewKind) (*ocfl.View, error)
	SaveViewFn    func(ctx context.Context, view *ocfl.View) error
	DeleteViewsFn func(ctx context.Context) error
}

func (s *ViewStore) FindView(ctx context.Context, kind ocfl.ViewKind) (*ocfl.View, error) {
	return s.FindViewFn(ctx, kind)
}

func (s *ViewStore) SaveView(ctx context.Context, view *ocfl.View) error {
	return s.SaveViewFn(ctx, view)
}

func (s *ViewStore) DeleteViews(ctx context.Context) error {
	return s.DeleteViewsFn(ctx)
}
