// Package store implements the embedded SQLite store backing Haven.
// Each named table supports primary-key and secondary-index lookups;
// WithTx groups operations across tables into one all-or-nothing
// transaction.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/itskylebrooks/haven/pkg/types"
)

// DBFileName is the SQLite file created inside the data directory.
const DBFileName = "haven.db"

// Store is the embedded Haven database. It is safe for concurrent use;
// SQLite serializes writers and the WAL journal keeps readers unblocked.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	config types.Config
	closed bool
}

// Queries groups all table operations over a shared query target, which is
// either the store's connection or an open transaction.
type Queries struct {
	q querier
}

// querier is the subset of *sql.DB and *sql.Tx the table accessors need.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Open creates the data directory if needed, opens (or creates) the Haven
// database inside it, and ensures the schema exists.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// modernc's driver multiplexes one file handle; a single connection
	// avoids table-lock errors on concurrent transactions.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create indexes: %w", err)
		}
	}

	return &Store{db: db, config: config}, nil
}

// Close releases the underlying connection. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Queries returns the table operations bound to the store's connection.
// Each call runs in its own implicit transaction.
func (s *Store) Queries() Queries {
	return Queries{q: s.db}
}

// WithTx runs fn inside a single SQLite transaction. A non-nil error from
// fn rolls back every operation performed through the passed Queries.
func (s *Store) WithTx(fn func(Queries) error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return types.ErrStoreClosed
	}
	s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(Queries{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// mapConstraintErr translates SQLite unique-constraint violations into
// types.ErrDuplicateKey so callers can rely on add-semantics.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", types.ErrDuplicateKey, err)
	}
	return err
}
