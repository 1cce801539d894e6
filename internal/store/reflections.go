// Reflections table accessor.
package store

import (
	"database/sql"
	"fmt"

	"github.com/itskylebrooks/haven/pkg/types"
)

// PutReflection inserts or replaces a reflection row.
func (q Queries) PutReflection(r types.Reflection) error {
	_, err := q.q.Exec(
		`INSERT INTO reflections (id, trace_id, author, text, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   trace_id = excluded.trace_id, author = excluded.author,
		   text = excluded.text, created_at = excluded.created_at`,
		r.ID, r.TraceID, r.Author, r.Text, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("put reflection %s: %w", r.ID, err)
	}
	return nil
}

// DeleteReflection removes a reflection row by id.
func (q Queries) DeleteReflection(id string) error {
	if _, err := q.q.Exec("DELETE FROM reflections WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete reflection %s: %w", id, err)
	}
	return nil
}

// AllReflections returns every reflection row.
func (q Queries) AllReflections() ([]types.Reflection, error) {
	rows, err := q.q.Query(
		"SELECT id, trace_id, author, text, created_at FROM reflections",
	)
	if err != nil {
		return nil, fmt.Errorf("query reflections: %w", err)
	}
	return scanReflections(rows)
}

// ReflectionsByTrace returns the reflections on a trace, oldest first.
func (q Queries) ReflectionsByTrace(traceID string) ([]types.Reflection, error) {
	rows, err := q.q.Query(
		`SELECT id, trace_id, author, text, created_at FROM reflections
		 WHERE trace_id = ? ORDER BY created_at ASC`,
		traceID,
	)
	if err != nil {
		return nil, fmt.Errorf("query reflections by trace: %w", err)
	}
	return scanReflections(rows)
}

// RenameReflectionAuthor rewrites the author field on every reflection
// authored by oldName.
func (q Queries) RenameReflectionAuthor(oldName, newName string) error {
	if _, err := q.q.Exec("UPDATE reflections SET author = ? WHERE author = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename reflection author: %w", err)
	}
	return nil
}

// DeleteReflectionsForTrace removes every reflection on the given trace.
func (q Queries) DeleteReflectionsForTrace(traceID string) error {
	if _, err := q.q.Exec("DELETE FROM reflections WHERE trace_id = ?", traceID); err != nil {
		return fmt.Errorf("delete reflections for trace %s: %w", traceID, err)
	}
	return nil
}

func scanReflections(rows *sql.Rows) ([]types.Reflection, error) {
	defer rows.Close()

	var reflections []types.Reflection
	for rows.Next() {
		var r types.Reflection
		if err := rows.Scan(&r.ID, &r.TraceID, &r.Author, &r.Text, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reflection: %w", err)
		}
		reflections = append(reflections, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reflections: %w", err)
	}
	return reflections, nil
}
