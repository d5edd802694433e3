// Package logging provides structured logging utilities.
package logging

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-service", "info")

	assert.NotNil(t, logger)
}

func TestNewLogger_ParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger("test-service", tt.level)
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestNewPrettyLogger(t *testing.T) {
	logger := NewPrettyLogger("test-service", "debug")

	assert.NotNil(t, logger)
}

func TestJobLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	jobLogger := JobLogger(base, "job-123", 2)
	jobLogger.Info().Msg("printed")

	out := buf.String()
	assert.Contains(t, out, "job-123")
	assert.Contains(t, out, `"peerId":2`)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest("GET", "/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "http_request")
	assert.Contains(t, out, "/status")
}

func TestGRPCLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	interceptor := GRPCLogger(logger)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "response", nil
	}

	resp, err := interceptor(context.Background(), "request",
		&grpc.UnaryServerInfo{FullMethod: "/mutex.v1.MutexService/RequestAccess"}, handler)

	require.NoError(t, err)
	assert.Equal(t, "response", resp)
	assert.Contains(t, buf.String(), "RequestAccess")
	assert.Contains(t, buf.String(), codes.OK.String())
}

func TestGRPCLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	interceptor := GRPCLogger(logger)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "peer_id is required")
	}

	_, err := interceptor(context.Background(), "request",
		&grpc.UnaryServerInfo{FullMethod: "/mutex.v1.MutexService/RequestAccess"}, handler)

	require.Error(t, err)
	assert.Contains(t, buf.String(), codes.InvalidArgument.String())
}
