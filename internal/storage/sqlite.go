// Package storage keeps the session run ledger in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk: the ledger lives and dies with the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN is a private in-memory database. Each connection would get its own
// empty database, so the pool is pinned to a single connection.
const memoryDSN = "file::memory:"

// Store manages the SQLite connection holding this session's runs.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RunEntry represents one finished game.
type RunEntry struct {
	ID        string
	Variant   string
	Score     int
	Length    int
	Reason    string // "wall" or "self"
	Ticks     uint64 // Engine steps survived
	CreatedAt time.Time
}

// Open creates the in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns it with its assigned ID and
// timestamp.
func (s *Store) RecordRun(run RunEntry) (RunEntry, error) {
	run.ID = uuid.NewString()
	run.CreatedAt = s.now()

	_, err := s.db.Exec(
		`INSERT INTO runs (id, variant, score, length, reason, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Variant, run.Score, run.Length, run.Reason, int64(run.Ticks),
		run.CreatedAt.UnixNano(),
	)
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot record run: %w", err)
	}
	return run, nil
}

// TopRuns retrieves the best runs of a variant, highest score first; ties go
// to the earlier run. An empty variant lists every variant.
func (s *Store) TopRuns(variant string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, score, length, reason, ticks, created_at
		 FROM runs
		 WHERE ? = '' OR variant = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var ticks, createdAt int64
		if err := rows.Scan(&e.ID, &e.Variant, &e.Score, &e.Length, &e.Reason, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = time.Unix(0, createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score recorded for the variant.
// Returns 0 if no runs exist.
func (s *Store) BestScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RunCount returns how many runs have been recorded this session.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
