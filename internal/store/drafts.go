// Drafts table accessor.
package store

import (
	"database/sql"
	"fmt"

	"github.com/itskylebrooks/haven/pkg/types"
)

// PutDraft overwrites the draft stored under its key.
func (q Queries) PutDraft(d types.Draft) error {
	_, err := q.q.Exec(
		`INSERT INTO drafts (key, text, kind, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   text = excluded.text, kind = excluded.kind, updated_at = excluded.updated_at`,
		d.Key, d.Text, d.Kind, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("put draft %s: %w", d.Key, err)
	}
	return nil
}

// GetDraft retrieves the draft stored under key. Returns types.ErrNotFound
// when no draft exists.
func (q Queries) GetDraft(key string) (*types.Draft, error) {
	row := q.q.QueryRow("SELECT key, text, kind, updated_at FROM drafts WHERE key = ?", key)
	var d types.Draft
	if err := row.Scan(&d.Key, &d.Text, &d.Kind, &d.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get draft %s: %w", key, err)
	}
	return &d, nil
}

// DeleteDraft removes the draft stored under key.
func (q Queries) DeleteDraft(key string) error {
	if _, err := q.q.Exec("DELETE FROM drafts WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete draft %s: %w", key, err)
	}
	return nil
}
