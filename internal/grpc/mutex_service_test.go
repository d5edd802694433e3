package grpc

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/clock"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/mutex"
	mutexv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/mutex/v1"
)

func newTestMutexService(t *testing.T) *MutexService {
	t.Helper()
	engine := mutex.NewEngine(1, nil, clock.New(), nil, nil, zerolog.Nop())
	return NewMutexService(engine, zerolog.Nop())
}

func TestMutexService_RequestAccess_GrantedWhenReleased(t *testing.T) {
	svc := newTestMutexService(t)

	reply, err := svc.RequestAccess(context.Background(), &mutexv1.AccessRequest{
		PeerId:           2,
		LamportTimestamp: 5,
	})

	require.NoError(t, err)
	assert.True(t, reply.Granted)
	assert.Equal(t, uint32(1), reply.PeerId)
	// The reply timestamp must dominate the observed request timestamp.
	assert.Greater(t, reply.LamportTimestamp, uint64(5))
}

func TestMutexService_RequestAccess_MissingPeerID(t *testing.T) {
	svc := newTestMutexService(t)

	_, err := svc.RequestAccess(context.Background(), &mutexv1.AccessRequest{
		LamportTimestamp: 5,
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMutexService_ReleaseAccess(t *testing.T) {
	svc := newTestMutexService(t)

	ack, err := svc.ReleaseAccess(context.Background(), &mutexv1.ReleaseNotice{
		PeerId:           2,
		LamportTimestamp: 9,
	})

	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
}

func TestMutexService_ReleaseAccess_MissingPeerID(t *testing.T) {
	svc := newTestMutexService(t)

	_, err := svc.ReleaseAccess(context.Background(), &mutexv1.ReleaseNotice{
		LamportTimestamp: 9,
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
