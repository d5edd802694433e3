package mutex

import "sort"

// State is the local peer's position in the mutual-exclusion protocol.
type State int32

const (
	// StateReleased means the peer neither holds nor wants the critical section.
	StateReleased State = iota
	// StateWanted means the peer has an outstanding request and is
	// collecting replies.
	StateWanted
	// StateHeld means the peer is inside the critical section.
	StateHeld
)

// String returns the state name for logs and status reporting.
func (s State) String() string {
	switch s {
	case StateReleased:
		return "RELEASED"
	case StateWanted:
		return "WANTED"
	case StateHeld:
		return "HELD"
	default:
		return "UNKNOWN"
	}
}

// peerState is the engine's protocol bookkeeping. All fields are guarded
// by the engine mutex; each transition is applied as one read-modify-write
// under that lock, never field by field.
type peerState struct {
	state     State
	requestTS uint64
	pending   map[uint32]struct{} // peers whose reply is still outstanding
	deferred  map[uint32]struct{} // peers answered only on release
}

func newPeerState() *peerState {
	return &peerState{
		state:    StateReleased,
		deferred: make(map[uint32]struct{}),
	}
}

// beginRequest moves RELEASED -> WANTED for a request stamped ts, expecting
// one reply from each listed peer.
func (ps *peerState) beginRequest(ts uint64, peers []uint32) {
	ps.state = StateWanted
	ps.requestTS = ts
	ps.pending = make(map[uint32]struct{}, len(peers))
	for _, id := range peers {
		ps.pending[id] = struct{}{}
	}
}

// recordReply consumes the reply from one peer. It reports whether the
// reply was expected (a duplicate, a reply from an unknown peer, or a
// reply outside WANTED is rejected without mutating anything) and how many
// replies remain outstanding.
func (ps *peerState) recordReply(from uint32) (accepted bool, remaining int) {
	if ps.state != StateWanted {
		return false, len(ps.pending)
	}
	if _, ok := ps.pending[from]; !ok {
		return false, len(ps.pending)
	}
	delete(ps.pending, from)
	return true, len(ps.pending)
}

// hasPriorityOver reports whether the local outstanding request takes
// precedence over an incoming request stamped ts from requester. Lower
// timestamp wins; equal timestamps break on the lower peer id. This
// ordering is what makes grants totally ordered across the cluster.
func (ps *peerState) hasPriorityOver(ts uint64, self, requester uint32) bool {
	if ps.state == StateReleased {
		return false
	}
	if ps.requestTS != ts {
		return ps.requestTS < ts
	}
	return self < requester
}

// deferPeer records a requester to be answered at release time.
func (ps *peerState) deferPeer(id uint32) {
	ps.deferred[id] = struct{}{}
}

// drainDeferred empties the deferred set and returns its members in
// ascending id order.
func (ps *peerState) drainDeferred() []uint32 {
	ids := make([]uint32, 0, len(ps.deferred))
	for id := range ps.deferred {
		ids = append(ids, id)
	}
	ps.deferred = make(map[uint32]struct{})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
