package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/clock"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/mutex"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/printjob"
	printerv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/printer/v1"
)

// fakeJobLister stands in for the print server's job history.
type fakeJobLister struct {
	resp *printerv1.ListJobsResponse
	err  error
}

func (f *fakeJobLister) ListJobs(ctx context.Context, limit int32) (*printerv1.ListJobsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestPeerRoutes_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	engine := mutex.NewEngine(1, nil, clock.New(), nil, nil, zerolog.Nop())
	RegisterPeerRoutes(router, engine, &fakeJobLister{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestPeerRoutes_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	engine := mutex.NewEngine(1, []uint32{2, 3}, clock.New(), nil, nil, zerolog.Nop())
	RegisterPeerRoutes(router, engine, &fakeJobLister{})

	req := httptest.NewRequest("GET", "/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot mutex.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, uint32(1), snapshot.PeerID)
	assert.Equal(t, "RELEASED", snapshot.State)
}

func TestPeerRoutes_JobsProxiesPrintServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	engine := mutex.NewEngine(1, nil, clock.New(), nil, nil, zerolog.Nop())
	lister := &fakeJobLister{resp: &printerv1.ListJobsResponse{
		Jobs:       []*printerv1.PrintJob{{JobId: "job-1", PeerId: 2, Document: "Quarterly Report"}},
		TotalCount: 1,
	}}
	RegisterPeerRoutes(router, engine, lister)

	req := httptest.NewRequest("GET", "/jobs?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "job-1")
	assert.Contains(t, rec.Body.String(), `"totalCount":1`)
}

func TestPeerRoutes_JobsPrintServerDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	engine := mutex.NewEngine(1, nil, clock.New(), nil, nil, zerolog.Nop())
	RegisterPeerRoutes(router, engine, &fakeJobLister{err: context.DeadlineExceeded})

	req := httptest.NewRequest("GET", "/jobs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPrintServerRoutes_Jobs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := printjob.NewInMemoryStore()
	RegisterPrintServerRoutes(router, store)

	require.NoError(t, store.Create(context.Background(), &printjob.Job{
		ID:        "job-1",
		PeerID:    2,
		Document:  "Quarterly Report",
		PrintedAt: time.Now(),
		Success:   true,
	}))

	req := httptest.NewRequest("GET", "/jobs?limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Jobs       []*printjob.Job `json:"jobs"`
		TotalCount int64           `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.TotalCount)
	require.Len(t, body.Jobs, 1)
	assert.Equal(t, "job-1", body.Jobs[0].ID)
}

func TestPrintServerRoutes_JobsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterPrintServerRoutes(router, printjob.NewInMemoryStore())

	req := httptest.NewRequest("GET", "/jobs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCount":0`)
}
