// Package ledger keeps an optional SQLite history of validation runs.
// The comparison itself is stateless; recording happens only when the
// caller asks for it.
package ledger

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Run statuses.
const (
	StatusClean = "clean"
	StatusDirty = "dirty"
)

// Run is one recorded validation outcome.
type Run struct {
	ID        string
	CreatedAt time.Time
	MapName   string
	SourceA   string
	SourceB   string
	Tolerance float64
	Bins      int
	Differing int
	Status    string
}

// Ledger is an open run-history database.
type Ledger struct {
	db *sql.DB
}

// Open opens (creating if needed) the ledger database at path and
// applies the schema.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %q: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply ledger schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record inserts a run. A missing ID or timestamp is filled in.
func (l *Ledger) Record(r *Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Status != StatusClean && r.Status != StatusDirty {
		return fmt.Errorf("invalid run status %q", r.Status)
	}

	_, err := l.db.Exec(`
		INSERT INTO runs (run_id, created_at, map_name, source_a, source_b, tolerance, bins, differing, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.Format(time.RFC3339Nano), r.MapName,
		r.SourceA, r.SourceB, r.Tolerance, r.Bins, r.Differing, r.Status)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// List returns all recorded runs, newest first.
func (l *Ledger) List() ([]Run, error) {
	rows, err := l.db.Query(`
		SELECT run_id, created_at, map_name, source_a, source_b, tolerance, bins, differing, status
		FROM runs ORDER BY created_at DESC, run_id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r  Run
			ts string
		)
		if err := rows.Scan(&r.ID, &ts, &r.MapName, &r.SourceA, &r.SourceB,
			&r.Tolerance, &r.Bins, &r.Differing, &r.Status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", ts, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
