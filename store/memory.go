package store

import (
	"context"
	"sort"
	"sync"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	records     map[string]map[int]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.records = make(map[string]map[int]Record)
	return nil
}

func (s *MemoryStore) SaveRecord(_ context.Context, rec Record) error {
	if err := rec.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	run, ok := s.records[rec.RunID]
	if !ok {
		run = make(map[int]Record)
		s.records[rec.RunID] = run
	}
	rec.Outputs = append([]uint64(nil), rec.Outputs...)
	run[rec.Seq] = rec
	return nil
}

func (s *MemoryStore) ListRecords(_ context.Context, runID string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	run := s.records[runID]
	out := make([]Record, 0, len(run))
	for _, rec := range run {
		rec.Outputs = append([]uint64(nil), rec.Outputs...)
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]RunSummary, 0, len(s.records))
	for runID, run := range s.records {
		sum := RunSummary{RunID: runID, Tables: len(run)}
		for _, rec := range run {
			if sum.CreatedAt.IsZero() || rec.CreatedAt.Before(sum.CreatedAt) {
				sum.CreatedAt = rec.CreatedAt
			}
			if sum.DomainSize == 0 || rec.DomainSize < sum.DomainSize {
				sum.DomainSize = rec.DomainSize
			}
		}
		out = append(out, sum)
	}
	sortRuns(out)
	return out, nil
}

func sortRuns(runs []RunSummary) {
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.Before(runs[j].CreatedAt)
		}
		return runs[i].RunID < runs[j].RunID
	})
}
