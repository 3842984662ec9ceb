package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width UTC, so text order matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore keeps records in a single SQLite table, one row per (run, seq).
// Outputs are stored as JSON text so 64-bit ranks survive unchanged.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	if s.path == "" {
		return errors.New("sqlite path is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec Record) error {
	if err := rec.validate(); err != nil {
		return err
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}

	outputs, err := json.Marshal(rec.Outputs)
	if err != nil {
		return err
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = db.ExecContext(
		ctx,
		`INSERT INTO cpt_records (run_id, seq, domain_size, arity, incompleteness, attempts, outputs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id, seq) DO UPDATE SET
		   domain_size = excluded.domain_size,
		   arity = excluded.arity,
		   incompleteness = excluded.incompleteness,
		   attempts = excluded.attempts,
		   outputs = excluded.outputs,
		   created_at = excluded.created_at`,
		rec.RunID,
		rec.Seq,
		rec.DomainSize,
		rec.Arity,
		rec.Incompleteness,
		rec.Attempts,
		string(outputs),
		created.UTC().Format(timeLayout),
	)
	return err
}

func (s *SQLiteStore) ListRecords(ctx context.Context, runID string) ([]Record, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(
		ctx,
		`SELECT run_id, seq, domain_size, arity, incompleteness, attempts, outputs, created_at
		 FROM cpt_records WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var (
			rec     Record
			outputs string
			created string
		)
		if err := rows.Scan(
			&rec.RunID,
			&rec.Seq,
			&rec.DomainSize,
			&rec.Arity,
			&rec.Incompleteness,
			&rec.Attempts,
			&outputs,
			&created,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(outputs), &rec.Outputs); err != nil {
			return nil, fmt.Errorf("decode outputs for run %s seq %d: %w", rec.RunID, rec.Seq, err)
		}
		if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("decode created_at for run %s seq %d: %w", rec.RunID, rec.Seq, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListRuns(ctx context.Context) ([]RunSummary, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(
		ctx,
		`SELECT run_id, COUNT(*), MIN(domain_size), MIN(created_at)
		 FROM cpt_records GROUP BY run_id ORDER BY MIN(created_at), run_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunSummary, 0)
	for rows.Next() {
		var (
			sum     RunSummary
			created string
		)
		if err := rows.Scan(&sum.RunID, &sum.Tables, &sum.DomainSize, &created); err != nil {
			return nil, err
		}
		if sum.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("decode created_at for run %s: %w", sum.RunID, err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS cpt_records (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	domain_size INTEGER NOT NULL,
	arity INTEGER NOT NULL,
	incompleteness REAL NOT NULL,
	attempts INTEGER NOT NULL,
	outputs TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);`)
	return err
}
