// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     store
// Description: SQLite-backed history of solve runs
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run is one recorded solve
type Run struct {
	ID         string    `json:"id"`
	PlanName   string    `json:"plan_name"`
	Status     string    `json:"status"`
	Objective  float64   `json:"objective"`
	Quantities []float64 `json:"quantities"`
	Products   []string  `json:"products"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store persists solve runs in a local SQLite database
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the history database at path
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		plan_name TEXT NOT NULL,
		status TEXT NOT NULL,
		objective REAL NOT NULL DEFAULT 0,
		solution TEXT NOT NULL DEFAULT '{}',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// solutionPayload is the JSON stored in the solution column
type solutionPayload struct {
	Products   []string  `json:"products"`
	Quantities []float64 `json:"quantities"`
}

// Record inserts a solve run. A missing ID and timestamp are filled in,
// and the final Run is returned.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(solutionPayload{
		Products:   run.Products,
		Quantities: run.Quantities,
	})
	if err != nil {
		return Run{}, fmt.Errorf("failed to encode solution: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, plan_name, status, objective, solution, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.PlanName, run.Status, run.Objective, string(payload), run.CreatedAt,
	)
	if err != nil {
		return Run{}, fmt.Errorf("failed to record run: %w", err)
	}

	return run, nil
}

// List returns the most recent runs, newest first
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, plan_name, status, objective, solution, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var payload string
		if err := rows.Scan(&run.ID, &run.PlanName, &run.Status,
			&run.Objective, &payload, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		var sol solutionPayload
		if err := json.Unmarshal([]byte(payload), &sol); err == nil {
			run.Products = sol.Products
			run.Quantities = sol.Quantities
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Get returns a single run by id
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	var run Run
	var payload string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, plan_name, status, objective, solution, created_at
		 FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &run.PlanName, &run.Status, &run.Objective, &payload, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return Run{}, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to load run: %w", err)
	}

	var sol solutionPayload
	if err := json.Unmarshal([]byte(payload), &sol); err == nil {
		run.Products = sol.Products
		run.Quantities = sol.Quantities
	}

	return run, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
