package sink

import (
	"fmt"
	"strings"
	"sync"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS rules (
	id  INTEGER PRIMARY KEY AUTOINCREMENT,
	css TEXT NOT NULL
);
`

// SQLite stores rules in an append-only table. Reopening the same file
// yields the rules of earlier runs, so caches built on it hydrate across
// processes.
type SQLite struct {
	mu   sync.Mutex
	conn *sqlite.Conn
	path string
}

// OpenSQLite opens or creates the database at path and ensures the rules
// table exists. Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLite, error) {
	flags := []sqlite.OpenFlags{sqlite.OpenReadWrite, sqlite.OpenCreate}
	if path == ":memory:" {
		flags = append(flags, sqlite.OpenMemory)
	}
	conn, err := sqlite.OpenConn(path, flags...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create schema in %s: %w", path, err)
	}
	return &SQLite{conn: conn, path: path}, nil
}

// Path returns the database location.
func (s *SQLite) Path() string {
	return s.path
}

// Insert appends rule.
func (s *SQLite) Insert(rule string) error {
	return s.InsertAll([]string{rule})
}

// InsertAll appends rules in one transaction: either all of them are
// stored or none.
func (s *SQLite) InsertAll(rules []string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer sqlitex.Save(s.conn)(&err)
	for _, rule := range rules {
		err = sqlitex.Execute(s.conn, `INSERT INTO rules (css) VALUES (?)`,
			&sqlitex.ExecOptions{Args: []any{rule}})
		if err != nil {
			return fmt.Errorf("insert rule: %w", err)
		}
	}
	return nil
}

// Rules returns the stored rules in insertion order.
func (s *SQLite) Rules() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	err := sqlitex.Execute(s.conn, `SELECT css FROM rules ORDER BY id`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			out = append(out, stmt.ColumnText(0))
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return out, nil
}

// String joins the stored rules with newlines.
func (s *SQLite) String() string {
	rules, err := s.Rules()
	if err != nil {
		return ""
	}
	return strings.Join(rules, "\n")
}

// Close closes the database.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return nil
}
