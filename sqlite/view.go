package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ocfl/ocfl"
)

// Compile-time interface verification.
var _ ocfl.ViewStore = (*ViewStore)(nil)

// ViewStore implements ocfl.ViewStore using SQLite. Views are keyed by the
// source document identity and kind.
type ViewStore struct {
	db  *DB
	key string
}

// NewViewStore creates a new ViewStore for the source identified by key.
func NewViewStore(db *DB, key string) *ViewStore {
	return &ViewStore{db: db, key: key}
}

// FindView retrieves the stored view of kind.
func (s *ViewStore) FindView(ctx context.Context, kind ocfl.ViewKind) (*ocfl.View, error) {
	var payload, producedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT payload, produced_at
		FROM views
		WHERE source_key = ? AND kind = ?
	`, s.key, string(kind)).Scan(&payload, &producedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ocfl.Errorf(ocfl.ENOTFOUND, "no cached %s view", kind)
	}
	if err != nil {
		return nil, err
	}

	v := &ocfl.View{Kind: kind}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return nil, err
	}
	v.Kind = kind
	if v.ProducedAt, err = parseTime(producedAt, "produced_at"); err != nil {
		return nil, err
	}

	return v, nil
}

// SaveView inserts or replaces the view of its kind.
func (s *ViewStore) SaveView(ctx context.Context, view *ocfl.View) error {
	if err := view.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO views (source_key, kind, payload, produced_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (source_key, kind) DO UPDATE SET
			payload = excluded.payload,
			produced_at = excluded.produced_at
	`, s.key, string(view.Kind), string(payload), formatTime(view.ProducedAt))

	return err
}

// DeleteViews removes every view stored for the source.
func (s *ViewStore) DeleteViews(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM views WHERE source_key = ?`, s.key)
	return err
}
