// Package moodstate records past runs in a local libsql database. Tracking is
// opt-in; the rest of the program never touches this package unless the user
// turned it on.
package moodstate

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	merrors "mommy/src/errors"
)

// Run is one wrapped-command invocation worth remembering.
type Run struct {
	ID        int64
	Role      string
	Mood      string
	ExitCode  int
	Pleases   int
	Timestamp time.Time
}

// Store wraps the local database holding run history.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and its parent directory) if needed and
// ensures the schema exists.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, merrors.WrapWithContext(err, "failed to create data directory")
	}

	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, merrors.NewDatabaseError("open", "runs", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, merrors.NewDatabaseError("ping", "runs", merrors.ErrDatabaseConnection)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		role TEXT NOT NULL,
		mood TEXT NOT NULL,
		exit_code INTEGER NOT NULL,
		pleases INTEGER NOT NULL DEFAULT 0,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return merrors.NewDatabaseError("create", "runs", err)
	}
	return nil
}

// Record stores one run. The timestamp defaults to now when unset.
func (s *Store) Record(r Run) error {
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (role, mood, exit_code, pleases, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Role, r.Mood, r.ExitCode, r.Pleases, ts.UTC().Format(time.RFC3339))
	if err != nil {
		return merrors.NewDatabaseError("insert", "runs", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, role, mood, exit_code, pleases, timestamp
		 FROM runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, merrors.NewDatabaseError("query", "runs", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&r.ID, &r.Role, &r.Mood, &r.ExitCode, &r.Pleases, &ts); err != nil {
			return nil, merrors.NewDatabaseError("scan", "runs", err)
		}
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, merrors.NewDatabaseError("scan", "runs",
				fmt.Errorf("bad timestamp %q: %w", ts, err))
		}
		r.Timestamp = parsed
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, merrors.NewDatabaseError("query", "runs", err)
	}
	return runs, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
