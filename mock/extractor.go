package mock

import "github.com/ocfl/ocfl"

var _ ocfl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ocfl.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*ocfl.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*ocfl.ExtractResult, error) {
	return e.ExtractFn(html)
}
