package printjob

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_CreateAndCount(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	err = store.Create(ctx, &Job{
		ID:               "job-1",
		PeerID:           2,
		Document:         "Quarterly Report",
		LamportTimestamp: 7,
		PrintedAt:        time.Now(),
		Success:          true,
	})
	require.NoError(t, err)

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInMemoryStore_ListNewestFirst(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		err := store.Create(ctx, &Job{
			ID:        fmt.Sprintf("job-%d", i),
			PeerID:    1,
			Document:  "doc",
			PrintedAt: time.Now(),
			Success:   true,
		})
		require.NoError(t, err)
	}

	jobs, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "job-5", jobs[0].ID)
	assert.Equal(t, "job-4", jobs[1].ID)
	assert.Equal(t, "job-3", jobs[2].ID)
}

func TestInMemoryStore_ListDefaultLimit(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Job{ID: "job-1"}))

	jobs, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestInMemoryStore_CreateCopiesJob(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	job := &Job{ID: "job-1", Document: "original"}
	require.NoError(t, store.Create(ctx, job))

	job.Document = "mutated"

	jobs, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "original", jobs[0].Document)
}
