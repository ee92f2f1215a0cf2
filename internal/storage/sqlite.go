// Package storage keeps a ledger of finished snake runs in an in-memory
// SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the ledger lives as long as the
// process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeGameOver  Outcome = "game_over"
	OutcomeWon       Outcome = "won"
	OutcomeAbandoned Outcome = "abandoned" // Quit mid-run
)

// RunRecord is a single finished play-through.
type RunRecord struct {
	ID        uuid.UUID
	Score     int
	Length    int
	Ticks     uint64
	Outcome   Outcome
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall time the run lasted.
func (r RunRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Stats aggregates every run in the ledger.
type Stats struct {
	Runs         int
	Wins         int
	BestScore    int
	AverageScore float64
	TotalTicks   uint64
}

// Store manages the SQLite connection backing the run ledger.
type Store struct {
	db *sql.DB
}

// OpenMemory creates a private in-memory ledger.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Each connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
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

// SaveRun records a finished run. A zero ID is replaced with a fresh one.
// Returns the stored record.
func (s *Store) SaveRun(run RunRecord) (RunRecord, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = run.EndedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, score, length, ticks, outcome, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.Score,
		run.Length,
		int64(run.Ticks),
		string(run.Outcome),
		run.StartedAt.UnixMilli(),
		run.EndedAt.UnixMilli(),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run, nil
}

const runColumns = `id, score, length, ticks, outcome, started_at, ended_at`

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestRun returns the highest scoring run; the earliest one wins a tie.
// ok is false when the ledger is empty.
func (s *Store) BestRun() (run RunRecord, ok bool, err error) {
	row := s.db.QueryRow(
		`SELECT ` + runColumns + `
		 FROM runs
		 ORDER BY score DESC, seq ASC
		 LIMIT 1`,
	)
	run, err = scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, err
	}
	return run, true, nil
}

// Stats returns aggregates over all runs. An empty ledger yields zero Stats.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var ticks int64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0.0),
		        COALESCE(SUM(ticks), 0)
		 FROM runs`,
		string(OutcomeWon),
	).Scan(&st.Runs, &st.Wins, &st.BestScore, &st.AverageScore, &ticks)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	st.TotalTicks = uint64(ticks)
	return st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var (
		run            RunRecord
		id, outcome    string
		ticks          int64
		started, ended int64
	)
	if err := sc.Scan(&id, &run.Score, &run.Length, &ticks, &outcome, &started, &ended); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, err
		}
		return RunRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: bad run id %q: %w", id, err)
	}
	run.ID = parsed
	run.Ticks = uint64(ticks)
	run.Outcome = Outcome(outcome)
	run.StartedAt = time.UnixMilli(started)
	run.EndedAt = time.UnixMilli(ended)
	return run, nil
}
