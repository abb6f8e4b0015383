// Package state persists validation run history in a local SQLite database.
package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id               TEXT PRIMARY KEY,
    started_at       TIMESTAMP NOT NULL,
    input_path       TEXT NOT NULL,
    report_path      TEXT NOT NULL,
    total_rows       INTEGER NOT NULL,
    rows_with_issues INTEGER NOT NULL,
    issue_count      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Run is one recorded validation run.
type Run struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	InputPath      string    `json:"input_path"`
	ReportPath     string    `json:"report_path"`
	TotalRows      int       `json:"total_rows"`
	RowsWithIssues int       `json:"rows_with_issues"`
	IssueCount     int       `json:"issue_count"`
}

// Store keeps run history in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new store instance. Call Open before use.
func NewStore() *Store {
	return &Store{}
}

// Open opens the SQLite database at path, creating it and its schema as
// needed. Use ":memory:" for an in-memory database.
func (s *Store) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping state database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize state schema: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records one completed validation run and returns it with its
// generated ID and timestamp filled in.
func (s *Store) SaveRun(inputPath, reportPath string, totalRows, rowsWithIssues, issueCount int) (*Run, error) {
	if s.db == nil {
		return nil, fmt.Errorf("state database not opened")
	}

	run := &Run{
		ID:             uuid.New().String(),
		StartedAt:      time.Now().UTC(),
		InputPath:      inputPath,
		ReportPath:     reportPath,
		TotalRows:      totalRows,
		RowsWithIssues: rowsWithIssues,
		IssueCount:     issueCount,
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, started_at, input_path, report_path, total_rows, rows_with_issues, issue_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.InputPath, run.ReportPath,
		run.TotalRows, run.RowsWithIssues, run.IssueCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}

	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if s.db == nil {
		return nil, fmt.Errorf("state database not opened")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, input_path, report_path, total_rows, rows_with_issues, issue_count
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(
			&run.ID, &run.StartedAt, &run.InputPath, &run.ReportPath,
			&run.TotalRows, &run.RowsWithIssues, &run.IssueCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
