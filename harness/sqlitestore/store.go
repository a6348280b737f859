// SPDX-License-Identifier: MIT

// Package sqlitestore keeps a harness case catalogue in a SQLite database.
//
// Each case is one row of the cases table, keyed by its position in the
// catalogue, with the case itself stored as a JSON blob (matrices as nested
// row arrays). SaveCases replaces the whole catalogue in one transaction.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/gaussjordan/harness"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS cases (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	payload  BLOB NOT NULL
)`

// Store is a harness.CaseStore backed by SQLite.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

var _ harness.CaseStore = (*Store)(nil)

// Open opens (creating if needed) the database at path. An empty path uses
// "cases.db" in the working directory.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "cases.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cases table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveCases implements harness.CaseStore.
func (s *Store) SaveCases(ctx context.Context, cases []harness.Case) (retErr error) {
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cases`); err != nil {
		return fmt.Errorf("clear cases: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cases(position, name, payload) VALUES(?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, c := range cases {
		payload, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode case %q: %w", c.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, i, c.Name, payload); err != nil {
			return fmt.Errorf("insert case %q: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// LoadCases implements harness.CaseStore. Rows that decode to an invalid
// case (missing matrices, mismatched rows) fail with harness.ErrInvalidCase.
func (s *Store) LoadCases(ctx context.Context) ([]harness.Case, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, payload FROM cases ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select cases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []harness.Case
	for rows.Next() {
		var (
			name    string
			payload []byte
		)
		if err := rows.Scan(&name, &payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var c harness.Case
		if err := json.Unmarshal(payload, &c); err != nil {
			return nil, fmt.Errorf("decode case %q: %w", name, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("load case %q: %w", name, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}

	return out, nil
}

// Count returns the number of stored cases.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}

	return n, nil
}
