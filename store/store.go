// Package store archives generated conditional preference tables, grouped by
// generation run, in memory or in a SQLite database.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gencpnet/cpt"
)

var (
	// ErrNotInitialized indicates a call before Init (or after Close).
	ErrNotInitialized = errors.New("store: not initialized")
	// ErrUnsupportedStore indicates an unknown backend kind.
	ErrUnsupportedStore = errors.New("store: unsupported backend")
	// ErrInvalidRecord indicates an empty run ID, a negative sequence number,
	// or a table that fails cpt validation.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// Record is one archived table.
type Record struct {
	RunID          string
	Seq            int
	DomainSize     int
	Arity          int
	Incompleteness float64
	Attempts       int
	Outputs        []uint64
	CreatedAt      time.Time
}

// RunSummary describes one run.
type RunSummary struct {
	RunID      string
	Tables     int
	DomainSize int
	CreatedAt  time.Time
}

// Store defines the archive operations shared by all backends.
type Store interface {
	Init(ctx context.Context) error
	SaveRecord(ctx context.Context, rec Record) error
	// ListRecords returns the run's records ordered by Seq; unknown runs
	// yield an empty result.
	ListRecords(ctx context.Context, runID string) ([]Record, error)
	// ListRuns returns every run ordered by creation time, then RunID.
	ListRuns(ctx context.Context) ([]RunSummary, error)
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// NewRecord builds a Record for table t, stamped with the current UTC time.
func NewRecord(runID string, seq int, eps float64, attempts int, t *cpt.Table) Record {
	return Record{
		RunID:          runID,
		Seq:            seq,
		DomainSize:     t.DomainSize,
		Arity:          t.Arity,
		Incompleteness: eps,
		Attempts:       attempts,
		Outputs:        append([]uint64(nil), t.Outputs...),
		CreatedAt:      time.Now().UTC(),
	}
}

// Table returns the record's table. The outputs slice is shared.
func (r Record) Table() *cpt.Table {
	return &cpt.Table{DomainSize: r.DomainSize, Arity: r.Arity, Outputs: r.Outputs}
}

// validate rejects records that would not round-trip into a valid table.
func (r Record) validate() error {
	if r.RunID == "" {
		return fmt.Errorf("empty run id: %w", ErrInvalidRecord)
	}
	if r.Seq < 0 {
		return fmt.Errorf("seq=%d: %w", r.Seq, ErrInvalidRecord)
	}
	if err := r.Table().Validate(); err != nil {
		return fmt.Errorf("run %s seq %d: %w: %w", r.RunID, r.Seq, ErrInvalidRecord, err)
	}
	return nil
}

// NewStore returns an uninitialized backend of the given kind.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("%s: %w", kind, ErrUnsupportedStore)
	}
}

// CloseIfSupported closes backends that hold resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
