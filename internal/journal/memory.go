package journal

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// MemoryStore is an in-memory implementation for testing
type MemoryStore struct {
	mu   sync.RWMutex
	runs []*Run
}

// NewMemoryStore creates a new in-memory journal
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make([]*Run, 0),
	}
}

// Record stores a copy of run
func (s *MemoryStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(run)
	for _, existing := range s.runs {
		if existing.ID == run.ID {
			return mdwerror.Newf(mdwerror.CodeDatabaseError, "run %q already recorded", run.ID).
				WithDetail("run_id", run.ID)
		}
	}

	stored := *run
	stored.Output = truncateOutput(stored.Output)
	s.runs = append(s.runs, &stored)
	return nil
}

// Get returns the run with the given id or unique id prefix
func (s *MemoryStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*Run
	for _, run := range s.runs {
		if run.ID == id {
			found := *run
			return &found, nil
		}
		if len(id) >= 4 && strings.HasPrefix(run.ID, id) {
			matches = append(matches, run)
		}
	}

	switch len(matches) {
	case 1:
		found := *matches[0]
		return &found, nil
	case 0:
		return nil, notFound(id)
	default:
		return nil, mdwerror.Newf(mdwerror.CodeInvalidInput, "run id prefix %q is ambiguous", id).
			WithDetail("run_id", id)
	}
}

// List retrieves runs based on filter criteria, newest first
func (s *MemoryStore) List(ctx context.Context, filter Filter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Run
	for _, run := range s.runs {
		if filter.Status != "" && run.Status != filter.Status {
			continue
		}
		if filter.Mode != "" && run.Mode != filter.Mode {
			continue
		}
		if filter.Source != "" && run.Source != filter.Source {
			continue
		}
		if filter.ErrorCode != "" && run.ErrorCode != filter.ErrorCode {
			continue
		}
		if !filter.Since.IsZero() && run.StartedAt.Before(filter.Since) {
			continue
		}
		found := *run
		results = append(results, &found)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StartedAt.After(results[j].StartedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}

	return results, nil
}

// Stats returns journal statistics
func (s *MemoryStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{
		Total:       int64(len(s.runs)),
		ByStatus:    make(map[string]int64),
		ByErrorCode: make(map[string]int64),
	}

	sources := make(map[string]bool)
	var total time.Duration
	for _, run := range s.runs {
		stats.ByStatus[string(run.Status)]++
		if run.ErrorCode != "" {
			stats.ByErrorCode[run.ErrorCode]++
		}
		if run.StartedAt.After(stats.LastRun) {
			stats.LastRun = run.StartedAt
		}
		sources[run.Source] = true
		total += run.Duration
	}
	stats.Sources = int64(len(sources))
	if len(s.runs) > 0 {
		stats.AvgDuration = total / time.Duration(len(s.runs))
	}

	return stats, nil
}

// Prune removes old runs
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64

	kept := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		if run.StartedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, run)
	}
	s.runs = kept

	return deleted, nil
}

// Vacuum is a no-op for memory store
func (s *MemoryStore) Vacuum(ctx context.Context) error {
	return nil
}

// Close is a no-op for memory store
func (s *MemoryStore) Close() error {
	return nil
}
