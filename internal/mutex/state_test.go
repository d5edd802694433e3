package mutex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPriorityOver(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		requestTS uint64
		self      uint32
		incomingT uint64
		requester uint32
		want      bool
	}{
		{"released never has priority", StateReleased, 0, 1, 5, 2, false},
		{"lower local timestamp wins", StateWanted, 3, 1, 5, 2, true},
		{"higher local timestamp loses", StateWanted, 7, 1, 5, 2, false},
		{"tie breaks on lower self id", StateWanted, 5, 1, 5, 2, true},
		{"tie breaks against higher self id", StateWanted, 5, 2, 5, 1, false},
		{"held with earlier request wins", StateHeld, 2, 3, 4, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newPeerState()
			ps.state = tt.state
			ps.requestTS = tt.requestTS
			got := ps.hasPriorityOver(tt.incomingT, tt.self, tt.requester)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordReply(t *testing.T) {
	ps := newPeerState()
	ps.beginRequest(10, []uint32{2, 3})

	accepted, remaining := ps.recordReply(2)
	assert.True(t, accepted)
	assert.Equal(t, 1, remaining)

	// Duplicate reply is rejected without effect.
	accepted, remaining = ps.recordReply(2)
	assert.False(t, accepted)
	assert.Equal(t, 1, remaining)

	// Reply from a peer that was never asked is rejected.
	accepted, remaining = ps.recordReply(9)
	assert.False(t, accepted)
	assert.Equal(t, 1, remaining)

	accepted, remaining = ps.recordReply(3)
	assert.True(t, accepted)
	assert.Equal(t, 0, remaining)
}

func TestRecordReply_OutsideWanted(t *testing.T) {
	ps := newPeerState()

	accepted, _ := ps.recordReply(2)
	assert.False(t, accepted)

	ps.beginRequest(1, []uint32{2})
	ps.state = StateHeld
	accepted, _ = ps.recordReply(2)
	assert.False(t, accepted)
}

func TestDrainDeferred(t *testing.T) {
	ps := newPeerState()
	ps.deferPeer(7)
	ps.deferPeer(2)
	ps.deferPeer(5)
	ps.deferPeer(2) // idempotent

	assert.Equal(t, []uint32{2, 5, 7}, ps.drainDeferred())
	assert.Empty(t, ps.drainDeferred())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "RELEASED", StateReleased.String())
	assert.Equal(t, "WANTED", StateWanted.String())
	assert.Equal(t, "HELD", StateHeld.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}
