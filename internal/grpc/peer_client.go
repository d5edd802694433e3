package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	mutexv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/mutex/v1"
)

// PeerClients holds one gRPC client per remote peer and implements
// mutex.Transport. Connections are created lazily by grpc-go; a peer that is
// down only fails at call time.
type PeerClients struct {
	timeout time.Duration
	logger  zerolog.Logger

	conns   map[uint32]*grpc.ClientConn
	clients map[uint32]mutexv1.MutexServiceClient
}

// NewPeerClients dials every peer in addrs (peer id -> host:port). timeout
// bounds each individual call.
func NewPeerClients(addrs map[uint32]string, timeout time.Duration, logger zerolog.Logger) (*PeerClients, error) {
	p := &PeerClients{
		timeout: timeout,
		logger:  logger.With().Str("component", "peer_clients").Logger(),
		conns:   make(map[uint32]*grpc.ClientConn, len(addrs)),
		clients: make(map[uint32]mutexv1.MutexServiceClient, len(addrs)),
	}

	for id, addr := range addrs {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("dial peer %d at %s: %w", id, addr, err)
		}
		p.conns[id] = conn
		p.clients[id] = mutexv1.NewMutexServiceClient(conn)
	}

	return p, nil
}

// RequestAccess calls RequestAccess on one remote peer.
func (p *PeerClients) RequestAccess(ctx context.Context, peerID uint32, req *mutexv1.AccessRequest) (*mutexv1.AccessReply, error) {
	client, ok := p.clients[peerID]
	if !ok {
		return nil, fmt.Errorf("unknown peer %d", peerID)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return client.RequestAccess(ctx, req)
}

// ReleaseAccess calls ReleaseAccess on one remote peer.
func (p *PeerClients) ReleaseAccess(ctx context.Context, peerID uint32, rel *mutexv1.ReleaseNotice) (*mutexv1.ReleaseAck, error) {
	client, ok := p.clients[peerID]
	if !ok {
		return nil, fmt.Errorf("unknown peer %d", peerID)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return client.ReleaseAccess(ctx, rel)
}

// PeerIDs returns the ids of all configured remote peers.
func (p *PeerClients) PeerIDs() []uint32 {
	ids := make([]uint32, 0, len(p.clients))
	for id := range p.clients {
		ids = append(ids, id)
	}
	return ids
}

// Close closes all peer connections.
func (p *PeerClients) Close() {
	for id, conn := range p.conns {
		if err := conn.Close(); err != nil {
			p.logger.Warn().Err(err).Uint32("peerId", id).Msg("closing peer connection")
		}
	}
}
