// Package grpc provides gRPC service implementations and peer clients.
package grpc

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/mutex"
	mutexv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/mutex/v1"
)

// MutexService implements the MutexServiceServer interface. It is a thin
// transport shim: all protocol decisions live in the engine.
type MutexService struct {
	mutexv1.UnimplementedMutexServiceServer
	engine *mutex.Engine
	logger zerolog.Logger
}

// NewMutexService creates a new MutexService.
func NewMutexService(engine *mutex.Engine, logger zerolog.Logger) *MutexService {
	return &MutexService{
		engine: engine,
		logger: logger.With().Str("service", "mutex").Logger(),
	}
}

// RequestAccess answers a peer's critical-section request. A granted=false
// reply is a deferral: the actual grant arrives later as a ReleaseAccess call.
func (s *MutexService) RequestAccess(ctx context.Context, req *mutexv1.AccessRequest) (*mutexv1.AccessReply, error) {
	if req.PeerId == 0 {
		return nil, status.Error(codes.InvalidArgument, "peer_id is required")
	}

	return s.engine.HandleRequest(req), nil
}

// ReleaseAccess delivers the withheld reply from a peer leaving the critical
// section.
func (s *MutexService) ReleaseAccess(ctx context.Context, rel *mutexv1.ReleaseNotice) (*mutexv1.ReleaseAck, error) {
	if rel.PeerId == 0 {
		return nil, status.Error(codes.InvalidArgument, "peer_id is required")
	}

	s.engine.HandleRelease(rel)

	return &mutexv1.ReleaseAck{Acknowledged: true}, nil
}
