// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records completed batch cipher runs in a local SQLite
// database so users can review what was processed, when, and with what
// outcome. The stored record never includes the key itself, only its length.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// SCHEMA
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    direction TEXT NOT NULL,      -- encrypt or decrypt
    started_at INTEGER NOT NULL,  -- Unix timestamp
    duration_ms INTEGER NOT NULL,
    key_length INTEGER NOT NULL,  -- SECURITY: key itself is never stored
    files_processed INTEGER NOT NULL,
    files_failed INTEGER NOT NULL,
    bytes_out INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// =============================================================================
// RUN LEDGER
// =============================================================================

var ErrClosed = errors.New("history ledger is closed")

// Run is one recorded batch run.
type Run struct {
	ID             string
	Direction      string
	StartedAt      time.Time
	Duration       time.Duration
	KeyLength      int
	FilesProcessed int
	FilesFailed    int
	BytesOut       int64
}

// Ledger stores runs in a SQLite database.
type Ledger struct {
	db      *sql.DB
	maxRuns int
}

// Open opens (creating if necessary) the ledger database at path. maxRuns
// caps retained rows; zero means unlimited.
func Open(path string, maxRuns int) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Ledger{db: db, maxRuns: maxRuns}, nil
}

// Close releases the database handle.
func (l *Ledger) Close() error {
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Record inserts a completed run, assigning it a fresh id, and prunes rows
// beyond the retention cap.
func (l *Ledger) Record(ctx context.Context, run Run) (string, error) {
	if l.db == nil {
		return "", ErrClosed
	}

	run.ID = uuid.New().String()

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO runs (id, direction, started_at, duration_ms, key_length,
		                  files_processed, files_failed, bytes_out)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Direction, run.StartedAt.Unix(), run.Duration.Milliseconds(),
		run.KeyLength, run.FilesProcessed, run.FilesFailed, run.BytesOut)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}

	if err := l.prune(ctx); err != nil {
		return "", err
	}
	return run.ID, nil
}

// Recent returns up to limit runs, newest first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Run, error) {
	if l.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, direction, started_at, duration_ms, key_length,
		       files_processed, files_failed, bytes_out
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt int64
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.Direction, &startedAt, &durationMS,
			&r.KeyLength, &r.FilesProcessed, &r.FilesFailed, &r.BytesOut); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.Unix(startedAt, 0)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Count returns the number of stored runs.
func (l *Ledger) Count(ctx context.Context) (int, error) {
	if l.db == nil {
		return 0, ErrClosed
	}
	var n int
	err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}

// prune deletes the oldest rows beyond maxRuns.
func (l *Ledger) prune(ctx context.Context) error {
	if l.maxRuns <= 0 {
		return nil
	}
	_, err := l.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC, id DESC LIMIT ?
		)`, l.maxRuns)
	if err != nil {
		return fmt.Errorf("failed to prune runs: %w", err)
	}
	return nil
}
