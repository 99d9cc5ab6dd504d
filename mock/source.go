package mock

import (
	"context"

	"github.com/ocfl/ocfl"
)

var _ ocfl.SourceLoader = (*SourceLoader)(nil)

// SourceLoader is a mock implementation of ocfl.SourceLoader.
type SourceLoader struct {
	LoadFn func(ctx context.Context) (string, error)
}

func (s *SourceLoader) Load(ctx context.Context) (string, error) {
	return s.LoadFn(ctx)
}

var _ ocfl.SourceWriter = (*SourceWriter)(nil)

// SourceWriter is a mock implementation of ocfl.SourceWriter.
type SourceWriter struct {
	WriteSourceFn func(ctx context.Context, content string) error
}

func (s *SourceWriter) WriteSource(ctx context.Context, content string) error {
	return s.WriteSourceFn(ctx, content)
}
