package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/testutil"
)

// The reference flow: alice creates, bob joins, only alice can generate.
func TestScenario_AliceAndBob(t *testing.T) {
	h, _, registry := newTestHandler()
	alice := &testutil.SimpleClient{ID: "conn-alice"}
	bob := &testutil.SimpleClient{ID: "conn-bob"}

	// alice creates a room with mode 1
	roomID := createRoom(t, h, alice, "alice", 1)

	// bob joins: both receive roomJoined("bob")
	h.handleJoinRoom(bob, codec.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomID:   roomID,
		PlayerID: "bob",
	}))
	for _, c := range []*testutil.SimpleClient{alice, bob} {
		joined := c.MessagesOfType(protocol.MsgRoomJoined)
		require.Len(t, joined, 1)
		payload, err := codec.ParsePayload[protocol.RoomJoinedPayload](joined[0])
		require.NoError(t, err)
		assert.Equal(t, "bob", payload.PlayerID)
	}

	// alice generates a preset: score 1, broadcast to both
	generatePreset(h, alice, roomID, "alice")

	sess, err := registry.Get(roomID)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Score())
	assert.Len(t, alice.MessagesOfType(protocol.MsgPresetGenerated), 1)
	assert.Len(t, bob.MessagesOfType(protocol.MsgPresetGenerated), 1)

	// bob tries to generate: no change, no event, no error
	generatePreset(h, bob, roomID, "bob")

	assert.Equal(t, 1, sess.Score())
	assert.Len(t, sess.UsedPresets(), 1)
	assert.Len(t, alice.MessagesOfType(protocol.MsgPresetGenerated), 1)
	assert.Len(t, bob.MessagesOfType(protocol.MsgPresetGenerated), 1)
	assert.Empty(t, bob.MessagesOfType(protocol.MsgError))
}
