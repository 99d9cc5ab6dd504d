package ocfl

import "context"

// SourceLoader reads the raw directory document.
type SourceLoader interface {
	// Load returns the full text of the directory document.
	// Returns ENOTFOUND if the document does not exist.
	Load(ctx context.Context) (string, error)
}

// SourceWriter replaces the directory document.
type SourceWriter interface {
	// WriteSource atomically replaces the document with content.
	WriteSource(ctx context.Context, content string) error
}
