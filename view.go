package ocfl

import (
	"context"
	"time"
)

// ViewKind identifies one of the structured views derived from the
// directory source.
type ViewKind string

// ViewKind constants.
const (
	ViewFlat        ViewKind = "flat"
	ViewCategorized ViewKind = "categorized"
)

// View is a parsed snapshot of the directory source. Exactly one of
// Entries (flat) or Categories (categorized) is populated, per Kind.
type View struct {
	Kind       ViewKind   `json:"kind"`
	Entries    []Entry    `json:"entries,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	ProducedAt time.Time  `json:"producedAt"`
}

// Validate returns an error if the view contains invalid fields.
func (v *View) Validate() error {
	switch v.Kind {
	case ViewFlat, ViewCategorized:
	default:
		return Errorf(EINVALID, "unknown view kind %q", v.Kind)
	}
	if v.ProducedAt.IsZero() {
		return Errorf(EINVALID, "view production time required")
	}
	return nil
}

// ViewStore persists parsed views between processes. Stores are a pure
// performance optimization: callers treat any error as a cache miss.
type ViewStore interface {
	// FindView returns the stored view of the given kind.
	// Returns ENOTFOUND if no view has been stored.
	FindView(ctx context.Context, kind ViewKind) (*View, error)

	// SaveView stores a view, replacing any previous view of the same kind.
	SaveView(ctx context.Context, view *View) error

	// DeleteViews removes every stored view of the source. Deleting views
	// that do not exist is not an error.
	DeleteViews(ctx context.Context) error
}
