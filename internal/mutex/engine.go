// Package mutex implements Ricart-Agrawala distributed mutual exclusion
// over Lamport logical clocks. Every peer runs one Engine, which plays
// three roles concurrently: initiator of the local access request,
// responder to inbound requests, and collector of replies.
package mutex

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/clock"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/metrics"
	mutexv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/mutex/v1"
	printerv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/printer/v1"
)

// Common errors returned by the engine.
var (
	// ErrAlreadyRequesting is returned by Acquire when a request cycle is
	// already in flight; the engine supports one outstanding request.
	ErrAlreadyRequesting = errors.New("access request already outstanding")

	// ErrNotHeld is returned by Release when the critical section is not held.
	ErrNotHeld = errors.New("critical section not held")
)

// Transport delivers point-to-point protocol calls to a single peer. The
// engine treats a broadcast as N-1 independent calls, never one aggregate.
type Transport interface {
	RequestAccess(ctx context.Context, peerID uint32, req *mutexv1.AccessRequest) (*mutexv1.AccessReply, error)
	ReleaseAccess(ctx context.Context, peerID uint32, rel *mutexv1.ReleaseNotice) (*mutexv1.ReleaseAck, error)
}

// Printer submits the protected work to the print server. The duration of
// the call bounds the critical section.
type Printer interface {
	PrintDocument(ctx context.Context, req *printerv1.PrintJobRequest) (*printerv1.PrintJobResponse, error)
}

// Engine coordinates mutually exclusive access to the print server among
// symmetric peers. All shared protocol state lives behind one mutex; the
// blocking wait for replies happens on a grant channel so that inbound
// message handling never blocks on the local peer's own pending request.
type Engine struct {
	self      uint32
	peers     []uint32
	clock     *clock.LamportClock
	transport Transport
	printer   Printer
	logger    zerolog.Logger

	mu          sync.Mutex
	st          *peerState
	grantCh     chan struct{}
	totalPrints uint64
}

// NewEngine creates an engine for peer self. peers lists the ids of all
// other cluster members; self is filtered out defensively.
func NewEngine(self uint32, peers []uint32, clk *clock.LamportClock, transport Transport, printer Printer, logger zerolog.Logger) *Engine {
	others := make([]uint32, 0, len(peers))
	for _, id := range peers {
		if id != self {
			others = append(others, id)
		}
	}
	return &Engine{
		self:      self,
		peers:     others,
		clock:     clk,
		transport: transport,
		printer:   printer,
		logger:    logger.With().Uint32("peerId", self).Logger(),
		st:        newPeerState(),
	}
}

// Acquire requests the critical section and blocks until every other peer
// has replied. There is no timeout: an unreachable peer leaves its reply
// permanently outstanding and the request stalls, which is the protocol's
// documented liveness limitation. The context bounds the caller's
// willingness to keep waiting: on cancellation the request is rolled back
// as if this peer had never asked, so a late reply cannot strand the
// engine in HELD.
func (e *Engine) Acquire(ctx context.Context) error {
	e.mu.Lock()
	if e.st.state != StateReleased {
		e.mu.Unlock()
		return ErrAlreadyRequesting
	}
	ts := e.clock.Stamp()
	e.st.beginRequest(ts, e.peers)
	grantCh := make(chan struct{})
	e.grantCh = grantCh
	if len(e.peers) == 0 {
		e.st.state = StateHeld
		close(grantCh)
	}
	e.mu.Unlock()

	metrics.SetMutexState(float64(StateWanted))
	metrics.RecordAccessRequestSent()
	e.logger.Info().
		Uint64("timestamp", ts).
		Int("peers", len(e.peers)).
		Msg("requesting critical section")

	req := &mutexv1.AccessRequest{PeerId: e.self, LamportTimestamp: ts}
	for _, id := range e.peers {
		go e.requestFrom(ctx, id, req)
	}

	start := time.Now()
	select {
	case <-grantCh:
		metrics.SetMutexState(float64(StateHeld))
		metrics.ObserveAcquireWait(time.Since(start).Seconds())
		e.logger.Info().
			Dur("wait", time.Since(start)).
			Msg("all replies received, entering critical section")
		return nil
	case <-ctx.Done():
		return e.abandonRequest(ctx)
	}
}

// abandonRequest rolls back a request cycle whose caller gave up waiting.
// WANTED reverts to RELEASED and the pending set is cleared, so replies
// arriving after the rollback are rejected as unexpected instead of
// entering HELD with nobody inside the critical section. Requesters
// deferred while competing are answered now, since this peer no longer
// contends.
func (e *Engine) abandonRequest(ctx context.Context) error {
	e.mu.Lock()
	if e.st.state == StateHeld {
		// The final reply won the race against cancellation.
		e.mu.Unlock()
		metrics.SetMutexState(float64(StateHeld))
		return nil
	}
	e.st.state = StateReleased
	e.st.requestTS = 0
	e.st.pending = nil
	deferred := e.st.drainDeferred()
	e.grantCh = nil
	e.mu.Unlock()

	ts := e.clock.Stamp()
	metrics.SetMutexState(float64(StateReleased))
	e.logger.Warn().
		Uint64("timestamp", ts).
		Int("deferred", len(deferred)).
		Msg("abandoning critical section request")

	rel := &mutexv1.ReleaseNotice{PeerId: e.self, LamportTimestamp: ts}
	relCtx := context.WithoutCancel(ctx)
	for _, id := range deferred {
		if _, err := e.transport.ReleaseAccess(relCtx, id, rel); err != nil {
			metrics.RecordTransportError("release_access")
			e.logger.Error().
				Err(err).
				Uint32("target", id).
				Msg("failed to deliver deferred reply")
			continue
		}
		metrics.RecordDeferredReplySent()
	}
	return ctx.Err()
}

// requestFrom issues one of the N-1 independent broadcast calls.
func (e *Engine) requestFrom(ctx context.Context, peerID uint32, req *mutexv1.AccessRequest) {
	reply, err := e.transport.RequestAccess(ctx, peerID, req)
	if err != nil {
		// No retry. The reply from this peer stays outstanding and the
		// WANTED state stalls until the cluster is whole again.
		metrics.RecordTransportError("request_access")
		e.logger.Warn().
			Err(err).
			Uint32("target", peerID).
			Msg("peer unreachable, reply left outstanding")
		return
	}
	e.clock.Observe(reply.GetLamportTimestamp())
	if reply.GetGranted() {
		e.receiveReply(peerID)
		return
	}
	// Deferred: the withheld reply arrives later as a ReleaseAccess call.
	e.logger.Debug().
		Uint32("target", peerID).
		Msg("deferred by peer, awaiting its release")
}

// receiveReply consumes one Ricart-Agrawala reply, whether returned
// directly by RequestAccess or delivered later through ReleaseAccess.
// Unexpected replies are ignored without mutating state.
func (e *Engine) receiveReply(from uint32) {
	e.mu.Lock()
	accepted, remaining := e.st.recordReply(from)
	var grantCh chan struct{}
	if accepted && remaining == 0 {
		e.st.state = StateHeld
		grantCh = e.grantCh
	}
	e.mu.Unlock()

	if !accepted {
		metrics.RecordProtocolViolation()
		e.logger.Debug().Uint32("from", from).Msg("ignoring unexpected reply")
		return
	}
	metrics.RecordReplyReceived()
	e.logger.Debug().
		Uint32("from", from).
		Int("pending", remaining).
		Msg("reply received")
	if grantCh != nil {
		close(grantCh)
	}
}

// HandleRequest answers an inbound access request from another peer.
// Access is ceded immediately when this peer is RELEASED or when the
// incoming request has strictly higher priority than the local outstanding
// one; otherwise the requester is deferred and answered only on release.
func (e *Engine) HandleRequest(req *mutexv1.AccessRequest) *mutexv1.AccessReply {
	e.clock.Observe(req.GetLamportTimestamp())

	e.mu.Lock()
	granted := !e.st.hasPriorityOver(req.GetLamportTimestamp(), e.self, req.GetPeerId())
	if !granted {
		e.st.deferPeer(req.GetPeerId())
	}
	e.mu.Unlock()

	if granted {
		metrics.RecordAccessRequestReceived("granted")
		e.logger.Info().
			Uint32("from", req.GetPeerId()).
			Uint64("timestamp", req.GetLamportTimestamp()).
			Msg("granting access")
	} else {
		metrics.RecordAccessRequestReceived("deferred")
		e.logger.Info().
			Uint32("from", req.GetPeerId()).
			Uint64("timestamp", req.GetLamportTimestamp()).
			Msg("deferring access until release")
	}

	return &mutexv1.AccessReply{
		PeerId:           e.self,
		Granted:          granted,
		LamportTimestamp: e.clock.Stamp(),
	}
}

// HandleRelease consumes a release notice from a peer that had deferred
// this peer's request; it delivers the withheld reply. A release that
// matches no outstanding request is an idempotent no-op.
func (e *Engine) HandleRelease(rel *mutexv1.ReleaseNotice) {
	e.clock.Observe(rel.GetLamportTimestamp())
	metrics.RecordReleaseReceived()
	e.logger.Debug().Uint32("from", rel.GetPeerId()).Msg("release received")
	e.receiveReply(rel.GetPeerId())
}

// Release leaves the critical section and sends the withheld reply to
// every deferred peer. The deferred set is drained atomically with the
// HELD -> RELEASED transition, so no requester can be answered twice.
func (e *Engine) Release(ctx context.Context) error {
	e.mu.Lock()
	if e.st.state != StateHeld {
		e.mu.Unlock()
		return ErrNotHeld
	}
	e.st.state = StateReleased
	e.st.requestTS = 0
	e.st.pending = nil
	deferred := e.st.drainDeferred()
	e.mu.Unlock()

	ts := e.clock.Stamp()
	metrics.SetMutexState(float64(StateReleased))
	e.logger.Info().
		Uint64("timestamp", ts).
		Int("deferred", len(deferred)).
		Msg("releasing critical section")

	rel := &mutexv1.ReleaseNotice{PeerId: e.self, LamportTimestamp: ts}
	for _, id := range deferred {
		if _, err := e.transport.ReleaseAccess(ctx, id, rel); err != nil {
			metrics.RecordTransportError("release_access")
			e.logger.Error().
				Err(err).
				Uint32("target", id).
				Msg("failed to deliver deferred reply")
			continue
		}
		metrics.RecordDeferredReplySent()
	}
	return nil
}

// Execute runs one full round: acquire the critical section, submit the
// document to the print server, release. The release runs even when the
// print fails, so other peers are never starved by a print failure; the
// failure is reported only to the caller.
func (e *Engine) Execute(ctx context.Context, document string) (*printerv1.PrintJobResponse, error) {
	if err := e.Acquire(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := e.Release(context.WithoutCancel(ctx)); err != nil {
			e.logger.Error().Err(err).Msg("release after print failed")
		}
	}()

	req := &printerv1.PrintJobRequest{
		JobId:            uuid.NewString(),
		PeerId:           e.self,
		Document:         document,
		LamportTimestamp: e.clock.Stamp(),
	}

	start := time.Now()
	resp, err := e.printer.PrintDocument(ctx, req)
	metrics.ObserveCriticalSection(time.Since(start).Seconds())
	if err != nil {
		metrics.RecordPrintJob("error")
		e.logger.Error().
			Err(err).
			Str("jobId", req.JobId).
			Msg("print job failed")
		return nil, err
	}
	e.clock.Observe(resp.GetLamportTimestamp())

	if !resp.GetSuccess() {
		metrics.RecordPrintJob("rejected")
		e.logger.Warn().Str("jobId", req.JobId).Msg("print job rejected by server")
		return resp, nil
	}

	e.mu.Lock()
	e.totalPrints++
	e.mu.Unlock()
	metrics.RecordPrintJob("success")
	e.logger.Info().
		Str("jobId", req.JobId).
		Str("confirmation", resp.GetConfirmation()).
		Msg("print confirmed")
	return resp, nil
}

// Snapshot is a point-in-time view of the engine for status reporting.
type Snapshot struct {
	PeerID           uint32 `json:"peerId"`
	State            string `json:"state"`
	LamportClock     uint64 `json:"lamportClock"`
	RequestTimestamp uint64 `json:"requestTimestamp,omitempty"`
	PendingReplies   int    `json:"pendingReplies"`
	DeferredPeers    int    `json:"deferredPeers"`
	TotalPrints      uint64 `json:"totalPrints"`
}

// Snapshot returns the current protocol state for the status API.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		PeerID:           e.self,
		State:            e.st.state.String(),
		LamportClock:     e.clock.Now(),
		RequestTimestamp: e.st.requestTS,
		PendingReplies:   len(e.st.pending),
		DeferredPeers:    len(e.st.deferred),
		TotalPrints:      e.totalPrints,
	}
}
