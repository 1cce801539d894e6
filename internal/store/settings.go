// Settings table accessor. Values are stored as JSON text.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/itskylebrooks/haven/pkg/types"
)

// AddSetting inserts a setting with add-semantics: it fails with
// types.ErrDuplicateKey when the key already exists. The seeding lock
// relies on this to elect a single initializer.
func (q Queries) AddSetting(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal setting %s: %w", key, err)
	}
	if _, err := q.q.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, string(data)); err != nil {
		return fmt.Errorf("add setting %s: %w", key, mapConstraintErr(err))
	}
	return nil
}

// PutSetting inserts or replaces a setting.
func (q Queries) PutSetting(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal setting %s: %w", key, err)
	}
	_, err = q.q.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}

// GetSetting unmarshals the setting's JSON value into out. Returns
// types.ErrNotFound when the key is absent.
func (q Queries) GetSetting(key string, out any) error {
	var raw string
	err := q.q.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get setting %s: %w", key, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("unmarshal setting %s: %w", key, err)
	}
	return nil
}

// HasSetting reports whether the key exists.
func (q Queries) HasSetting(key string) (bool, error) {
	err := q.GetSetting(key, nil)
	if err == nil {
		return true, nil
	}
	if err == types.ErrNotFound {
		return false, nil
	}
	return false, err
}

// DeleteSetting removes a setting by key.
func (q Queries) DeleteSetting(key string) error {
	if _, err := q.q.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}
