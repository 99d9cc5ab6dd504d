package fs

import (
	"context"
	"errors"
	"os"

	"github.com/ocfl/ocfl"
)

// Ensure Source implements the source interfaces at compile time.
var (
	_ ocfl.SourceLoader = (*Source)(nil)
	_ ocfl.SourceWriter = (*Source)(nil)
)

// Source reads and replaces the directory document on disk.
type Source struct {
	path string
}

// NewSource creates a Source for the document at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the document path.
func (s *Source) Path() string {
	return s.path
}

// Load reads the whole document. Returns ENOTFOUND if it does not exist.
func (s *Source) Load(ctx context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ocfl.Errorf(ocfl.ENOTFOUND, "directory document %q not found", s.path)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteSource replaces the document atomically, creating parent
// directories as needed.
func (s *Source) WriteSource(ctx context.Context, content string) error {
	if content == "" {
		return ocfl.Errorf(ocfl.EINVALID, "directory document content required")
	}
	return writeFileAtomic(s.path, []byte(content))
}
