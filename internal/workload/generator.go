// Package workload drives a peer by submitting print jobs at random
// intervals, simulating an office machine that occasionally needs the
// printer.
package workload

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	printerv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/printer/v1"
)

// Executor runs one full mutual-exclusion round for a document.
type Executor interface {
	Execute(ctx context.Context, document string) (*printerv1.PrintJobResponse, error)
}

var documents = []string{
	"Quarterly Report",
	"Meeting Minutes",
	"Invoice Batch",
	"Shipping Labels",
	"Expense Summary",
	"Project Roadmap",
	"Onboarding Checklist",
	"Maintenance Schedule",
}

// Generator submits documents through an Executor at random intervals in
// [intervalMin, intervalMax].
type Generator struct {
	executor    Executor
	intervalMin time.Duration
	intervalMax time.Duration
	logger      zerolog.Logger
}

// NewGenerator creates a workload generator.
func NewGenerator(executor Executor, intervalMin, intervalMax time.Duration, logger zerolog.Logger) *Generator {
	if intervalMax < intervalMin {
		intervalMax = intervalMin
	}
	return &Generator{
		executor:    executor,
		intervalMin: intervalMin,
		intervalMax: intervalMax,
		logger:      logger.With().Str("component", "workload").Logger(),
	}
}

// Run submits jobs until the context is canceled. Failed rounds are logged
// and the loop keeps going; one bad round must not stop the peer.
func (g *Generator) Run(ctx context.Context) {
	seq := 0
	for {
		interval := g.intervalMin
		if g.intervalMax > g.intervalMin {
			interval += rand.N(g.intervalMax - g.intervalMin)
		}

		select {
		case <-ctx.Done():
			g.logger.Info().Int("rounds", seq).Msg("workload generator stopped")
			return
		case <-time.After(interval):
		}

		seq++
		document := fmt.Sprintf("%s #%d", documents[rand.IntN(len(documents))], seq)

		resp, err := g.executor.Execute(ctx, document)
		if err != nil {
			g.logger.Error().Err(err).Str("document", document).Msg("print round failed")
			continue
		}
		g.logger.Info().
			Str("document", document).
			Str("jobId", resp.GetJobId()).
			Msg("print round completed")
	}
}
