package mock

import "github.com/ocfl/ocfl"

var _ ocfl.Converter = (*Converter)(nil)

// Converter is a mock implementation of ocfl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
