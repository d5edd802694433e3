package printjob

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/metrics"
)

// PostgresStore is a PostgreSQL implementation of Store.
//
// Expected schema:
//
//	CREATE TABLE print_jobs (
//	    id                TEXT PRIMARY KEY,
//	    peer_id           BIGINT NOT NULL,
//	    document          TEXT NOT NULL,
//	    lamport_timestamp BIGINT NOT NULL,
//	    printed_at        TIMESTAMPTZ NOT NULL,
//	    success           BOOLEAN NOT NULL
//	);
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed job store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create records a completed job.
func (s *PostgresStore) Create(ctx context.Context, job *Job) error {
	start := time.Now()
	defer func() {
		metrics.ObserveDatabaseQuery("create_job", time.Since(start).Seconds())
	}()

	query := `
		INSERT INTO print_jobs (id, peer_id, document, lamport_timestamp, printed_at, success)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := s.db.Exec(ctx, query,
		job.ID, job.PeerID, job.Document, job.LamportTimestamp, job.PrintedAt, job.Success)
	return err
}

// List returns the most recent jobs, newest first, up to limit.
func (s *PostgresStore) List(ctx context.Context, limit int32) ([]*Job, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveDatabaseQuery("list_jobs", time.Since(start).Seconds())
	}()

	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, peer_id, document, lamport_timestamp, printed_at, success
		FROM print_jobs
		ORDER BY printed_at DESC
		LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Job, 0, limit)
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.PeerID, &job.Document,
			&job.LamportTimestamp, &job.PrintedAt, &job.Success); err != nil {
			return nil, err
		}
		result = append(result, &job)
	}
	return result, rows.Err()
}

// Count returns the total number of recorded jobs.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveDatabaseQuery("count_jobs", time.Since(start).Seconds())
	}()

	var count int64
	err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM print_jobs").Scan(&count)
	return count, err
}
