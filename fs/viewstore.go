package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ocfl/ocfl"
)

// Ensure ViewStore implements ocfl.ViewStore at compile time.
var _ ocfl.ViewStore = (*ViewStore)(nil)

// ViewStore keeps one JSON file per view kind in a cache directory. File
// names embed a key identifying the source document, so several documents
// can share one directory.
//
// A view's production time is the file's modification time.
type ViewStore struct {
	dir string
	key string
}

// NewViewStore creates a ViewStore writing to dir for the source identified
// by key (see cache.Key).
func NewViewStore(dir, key string) *ViewStore {
	return &ViewStore{dir: dir, key: key}
}

// Path returns the cache file path for kind.
func (s *ViewStore) Path(kind ocfl.ViewKind) string {
	name := "directory"
	if kind == ocfl.ViewCategorized {
		name = "directory_categories"
	}
	return filepath.Join(s.dir, name+"-"+s.key+".json")
}

// FindView reads the cached view of kind. Returns ENOTFOUND if no cache file
// exists; a corrupt file is returned as an error.
func (s *ViewStore) FindView(ctx context.Context, kind ocfl.ViewKind) (*ocfl.View, error) {
	path := s.Path(kind)

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ocfl.Errorf(ocfl.ENOTFOUND, "no cached %s view", kind)
	} else if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	v := &ocfl.View{Kind: kind}
	switch kind {
	case ocfl.ViewFlat:
		err = json.Unmarshal(b, &v.Entries)
	case ocfl.ViewCategorized:
		err = json.Unmarshal(b, &v.Categories)
	default:
		return nil, ocfl.Errorf(ocfl.EINVALID, "unknown view kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	v.ProducedAt = info.ModTime()

	return v, nil
}

// SaveView writes the view payload atomically. The file's modification
// time is set to the view's production time.
func (s *ViewStore) SaveView(ctx context.Context, view *ocfl.View) error {
	if err := view.Validate(); err != nil {
		return err
	}

	var payload any = view.Entries
	if view.Kind == ocfl.ViewCategorized {
		payload = view.Categories
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	path := s.Path(view.Kind)
	if err := writeFileAtomic(path, b); err != nil {
		return err
	}
	return os.Chtimes(path, view.ProducedAt, view.ProducedAt)
}

// DeleteViews removes the cache files of both kinds.
func (s *ViewStore) DeleteViews(ctx context.Context) error {
	var errs []error
	for _, kind := range []ocfl.ViewKind{ocfl.ViewFlat, ocfl.ViewCategorized} {
		if err := os.Remove(s.Path(kind)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
