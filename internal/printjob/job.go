// Package printjob stores the history of jobs processed by the print server.
package printjob

import (
	"context"
	"time"
)

// Job is one document printed (or rejected) by the print server.
type Job struct {
	ID               string    `json:"id"`
	PeerID           uint32    `json:"peerId"`
	Document         string    `json:"document"`
	LamportTimestamp uint64    `json:"lamportTimestamp"`
	PrintedAt        time.Time `json:"printedAt"`
	Success          bool      `json:"success"`
}

// Store persists print-job history.
type Store interface {
	// Create records a completed job.
	Create(ctx context.Context, job *Job) error

	// List returns the most recent jobs, newest first, up to limit.
	List(ctx context.Context, limit int32) ([]*Job, error)

	// Count returns the total number of recorded jobs.
	Count(ctx context.Context) (int64, error)
}
