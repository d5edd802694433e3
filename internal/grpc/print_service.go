package grpc

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/clock"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/logging"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/metrics"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/printjob"
	printerv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/printer/v1"
)

// PrintService implements the PrintServiceServer interface. It simulates a
// physical printer by sleeping a random delay per document. The print server
// trusts the peers' mutual exclusion and does no locking of its own.
type PrintService struct {
	printerv1.UnimplementedPrintServiceServer
	store    printjob.Store
	clock    *clock.LamportClock
	delayMin time.Duration
	delayMax time.Duration
	logger   zerolog.Logger
}

// NewPrintService creates a new PrintService. Each job sleeps a uniformly
// random delay in [delayMin, delayMax].
func NewPrintService(store printjob.Store, clk *clock.LamportClock, delayMin, delayMax time.Duration, logger zerolog.Logger) *PrintService {
	if delayMax < delayMin {
		delayMax = delayMin
	}
	return &PrintService{
		store:    store,
		clock:    clk,
		delayMin: delayMin,
		delayMax: delayMax,
		logger:   logger.With().Str("service", "print").Logger(),
	}
}

// PrintDocument processes one print job.
func (s *PrintService) PrintDocument(ctx context.Context, req *printerv1.PrintJobRequest) (*printerv1.PrintJobResponse, error) {
	if req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	if req.PeerId == 0 {
		return nil, status.Error(codes.InvalidArgument, "peer_id is required")
	}
	if req.Document == "" {
		return nil, status.Error(codes.InvalidArgument, "document is required")
	}

	s.clock.Observe(req.LamportTimestamp)

	delay := s.delayMin
	if s.delayMax > s.delayMin {
		delay += rand.N(s.delayMax - s.delayMin)
	}

	logger := logging.JobLogger(s.logger, req.JobId, req.PeerId)
	logger.Info().
		Str("document", req.Document).
		Dur("delay", delay).
		Msg("printing document")

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		metrics.RecordPrintServerJob("canceled")
		return nil, status.FromContextError(ctx.Err()).Err()
	}
	metrics.ObservePrintServerDelay(delay.Seconds())

	job := &printjob.Job{
		ID:               req.JobId,
		PeerID:           req.PeerId,
		Document:         req.Document,
		LamportTimestamp: req.LamportTimestamp,
		PrintedAt:        time.Now(),
		Success:          true,
	}
	if err := s.store.Create(ctx, job); err != nil {
		// History is best effort: the document already printed.
		logger.Error().Err(err).Msg("failed to record print job")
	}

	metrics.RecordPrintServerJob("success")

	return &printerv1.PrintJobResponse{
		Success:          true,
		Confirmation:     fmt.Sprintf("printed %q for peer %d", req.Document, req.PeerId),
		JobId:            req.JobId,
		LamportTimestamp: s.clock.Stamp(),
	}, nil
}

// ListJobs returns the print history, newest first.
func (s *PrintService) ListJobs(ctx context.Context, req *printerv1.ListJobsRequest) (*printerv1.ListJobsResponse, error) {
	jobs, err := s.store.List(ctx, req.Limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list print jobs")
		return nil, status.Error(codes.Internal, "failed to list print jobs")
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count print jobs")
		return nil, status.Error(codes.Internal, "failed to count print jobs")
	}

	resp := &printerv1.ListJobsResponse{
		Jobs:       make([]*printerv1.PrintJob, 0, len(jobs)),
		TotalCount: int32(total),
	}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, &printerv1.PrintJob{
			JobId:            j.ID,
			PeerId:           j.PeerID,
			Document:         j.Document,
			LamportTimestamp: j.LamportTimestamp,
			PrintedAt:        timestamppb.New(j.PrintedAt),
			Success:          j.Success,
		})
	}
	return resp, nil
}
