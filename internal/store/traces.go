// Traces table accessor.
package store

import (
	"database/sql"
	"fmt"

	"github.com/itskylebrooks/haven/pkg/types"
)

// GetTrace retrieves a trace by id. Returns types.ErrNotFound when absent.
func (q Queries) GetTrace(id string) (*types.Trace, error) {
	row := q.q.QueryRow(
		"SELECT id, author, text, kind, created_at, image FROM traces WHERE id = ?",
		id,
	)
	var t types.Trace
	if err := row.Scan(&t.ID, &t.Author, &t.Text, &t.Kind, &t.CreatedAt, &t.Image); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get trace %s: %w", id, err)
	}
	return &t, nil
}

// PutTrace inserts or replaces a trace row.
func (q Queries) PutTrace(t types.Trace) error {
	_, err := q.q.Exec(
		`INSERT INTO traces (id, author, text, kind, created_at, image)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   author = excluded.author, text = excluded.text, kind = excluded.kind,
		   created_at = excluded.created_at, image = excluded.image`,
		t.ID, t.Author, t.Text, t.Kind, t.CreatedAt, t.Image,
	)
	if err != nil {
		return fmt.Errorf("put trace %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTrace removes a trace row by id.
func (q Queries) DeleteTrace(id string) error {
	if _, err := q.q.Exec("DELETE FROM traces WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete trace %s: %w", id, err)
	}
	return nil
}

// AllTracesDesc returns every trace, newest first.
func (q Queries) AllTracesDesc() ([]types.Trace, error) {
	rows, err := q.q.Query(
		"SELECT id, author, text, kind, created_at, image FROM traces ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("query traces: %w", err)
	}
	return scanTraces(rows)
}

// TracesByAuthor returns the traces authored by the given username.
func (q Queries) TracesByAuthor(author string) ([]types.Trace, error) {
	rows, err := q.q.Query(
		"SELECT id, author, text, kind, created_at, image FROM traces WHERE author = ?",
		author,
	)
	if err != nil {
		return nil, fmt.Errorf("query traces by author: %w", err)
	}
	return scanTraces(rows)
}

// LatestTraceByAuthor returns the author's most recently created trace, or
// types.ErrNotFound when the author has none.
func (q Queries) LatestTraceByAuthor(author string) (*types.Trace, error) {
	row := q.q.QueryRow(
		`SELECT id, author, text, kind, created_at, image FROM traces
		 WHERE author = ? ORDER BY created_at DESC LIMIT 1`,
		author,
	)
	var t types.Trace
	if err := row.Scan(&t.ID, &t.Author, &t.Text, &t.Kind, &t.CreatedAt, &t.Image); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("latest trace by %s: %w", author, err)
	}
	return &t, nil
}

// RenameTraceAuthor rewrites the author field on every trace authored by
// oldName.
func (q Queries) RenameTraceAuthor(oldName, newName string) error {
	if _, err := q.q.Exec("UPDATE traces SET author = ? WHERE author = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename trace author: %w", err)
	}
	return nil
}

// DeleteTraces removes the trace rows with the given ids.
func (q Queries) DeleteTraces(ids []string) error {
	for _, id := range ids {
		if err := q.DeleteTrace(id); err != nil {
			return err
		}
	}
	return nil
}

func scanTraces(rows *sql.Rows) ([]types.Trace, error) {
	defer rows.Close()

	var traces []types.Trace
	for rows.Next() {
		var t types.Trace
		if err := rows.Scan(&t.ID, &t.Author, &t.Text, &t.Kind, &t.CreatedAt, &t.Image); err != nil {
			return nil, fmt.Errorf("scan trace: %w", err)
		}
		traces = append(traces, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate traces: %w", err)
	}
	return traces, nil
}
