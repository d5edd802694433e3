package printjob

import (
	"context"
	"sync"
)

// InMemoryStore is an in-memory implementation of Store. It backs the print
// server when no database is configured, and tests.
type InMemoryStore struct {
	mu   sync.RWMutex
	jobs []*Job
}

// NewInMemoryStore creates a new in-memory job store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Create records a completed job.
func (s *InMemoryStore) Create(ctx context.Context, job *Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *job
	s.jobs = append(s.jobs, &stored)
	return nil
}

// List returns the most recent jobs, newest first, up to limit.
func (s *InMemoryStore) List(ctx context.Context, limit int32) ([]*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	result := make([]*Job, 0, limit)
	for i := len(s.jobs) - 1; i >= 0 && int32(len(result)) < limit; i-- {
		job := *s.jobs[i]
		result = append(result, &job)
	}
	return result, nil
}

// Count returns the total number of recorded jobs.
func (s *InMemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.jobs)), nil
}
