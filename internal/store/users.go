// Users table accessor.
package store

import (
	"database/sql"
	"fmt"

	"github.com/itskylebrooks/haven/pkg/types"
)

// GetUser retrieves a user by username. Returns types.ErrNotFound when no
// such user exists.
func (q Queries) GetUser(id string) (*types.User, error) {
	row := q.q.QueryRow(
		"SELECT id, name, handle, bio, avatar, visibility FROM users WHERE id = ?",
		id,
	)
	var u types.User
	if err := row.Scan(&u.ID, &u.Name, &u.Handle, &u.Bio, &u.Avatar, &u.Visibility); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

// PutUser inserts or replaces a user row.
func (q Queries) PutUser(u types.User) error {
	_, err := q.q.Exec(
		`INSERT INTO users (id, name, handle, bio, avatar, visibility)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name, handle = excluded.handle, bio = excluded.bio,
		   avatar = excluded.avatar, visibility = excluded.visibility`,
		u.ID, u.Name, u.Handle, u.Bio, u.Avatar, u.Visibility,
	)
	if err != nil {
		return fmt.Errorf("put user %s: %w", u.ID, err)
	}
	return nil
}

// DeleteUser removes a user row by username.
func (q Queries) DeleteUser(id string) error {
	if _, err := q.q.Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// AllUsers returns every user row.
func (q Queries) AllUsers() ([]types.User, error) {
	rows, err := q.q.Query("SELECT id, name, handle, bio, avatar, visibility FROM users")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Handle, &u.Bio, &u.Avatar, &u.Visibility); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// UsersByIDs returns the user rows whose usernames appear in ids, in no
// particular order. Unknown usernames are silently skipped.
func (q Queries) UsersByIDs(ids []string) ([]types.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]byte, 0, len(ids)*2)
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
		args = append(args, id)
	}
	rows, err := q.q.Query(
		"SELECT id, name, handle, bio, avatar, visibility FROM users WHERE id IN ("+string(placeholders)+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query users by ids: %w", err)
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Handle, &u.Bio, &u.Avatar, &u.Visibility); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
