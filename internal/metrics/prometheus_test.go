// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRegisterMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	RegisterMetricsEndpoint(router)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# HELP")
}

func TestMetricsHandler(t *testing.T) {
	handler := MetricsHandler()

	assert.NotNil(t, handler)
}

func TestGRPCMetrics_Success(t *testing.T) {
	interceptor := GRPCMetrics()
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "response", nil
	}

	resp, err := interceptor(context.Background(), "request",
		&grpc.UnaryServerInfo{FullMethod: "/mutex.v1.MutexService/RequestAccess"}, handler)

	require.NoError(t, err)
	assert.Equal(t, "response", resp)
}

func TestGRPCMetrics_Error(t *testing.T) {
	interceptor := GRPCMetrics()
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "peer_id is required")
	}

	_, err := interceptor(context.Background(), "request",
		&grpc.UnaryServerInfo{FullMethod: "/mutex.v1.MutexService/RequestAccess"}, handler)

	require.Error(t, err)
}

func TestRecordHelpers(t *testing.T) {
	// These should not panic.
	RecordAccessRequestSent()
	RecordAccessRequestReceived("granted")
	RecordAccessRequestReceived("deferred")
	RecordReplyReceived()
	RecordReleaseReceived()
	RecordDeferredReplySent()
	RecordProtocolViolation()
	RecordTransportError("request_access")
	SetMutexState(1)
	ObserveAcquireWait(0.25)
	ObserveCriticalSection(2.5)
	RecordPrintJob("success")
	RecordPrintServerJob("success")
	ObservePrintServerDelay(2.1)
	ObserveDatabaseQuery("create", 0.01)
}
