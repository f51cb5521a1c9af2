package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pixel-paint/internal/protocol"
)

func TestEncodeDecode(t *testing.T) {
	msg := MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomID:   "room-1",
		PlayerID: "alice",
	})

	data, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgJoinRoom, decoded.Type)

	payload, err := ParsePayload[protocol.JoinRoomPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "room-1", payload.RoomID)
	assert.Equal(t, "alice", payload.PlayerID)
}

func TestDecode_InvalidJSON(t *testing.T) {
	msg, err := Decode([]byte("{not json"))
	assert.Error(t, err)
	assert.Nil(t, msg)
}

func TestParsePayload_EmptyPayload(t *testing.T) {
	msg := MustNewMessage(protocol.MsgPing, nil)

	payload, err := ParsePayload[protocol.PongPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "", payload.Message)
}

func TestNewOpErrorMessage(t *testing.T) {
	msg := NewOpErrorMessage("joinRoom", protocol.ErrCodeRoomNotFound, "This room room-1 does not exist.")
	require.NotNil(t, msg)
	assert.Equal(t, protocol.MsgError, msg.Type)

	payload, err := ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "joinRoom", payload.Where)
	assert.Equal(t, protocol.ErrCodeRoomNotFound, payload.Code)
	assert.Equal(t, protocol.GenericErrorText, payload.Message)
	assert.Equal(t, "This room room-1 does not exist.", payload.Detail)
}

func TestMessagePool_ReuseResetsFields(t *testing.T) {
	msg := MustNewMessage(protocol.MsgPong, protocol.PongPayload{Message: "pong"})
	PutMessage(msg)

	reused := GetMessage()
	assert.Empty(t, reused.Type)
	assert.Nil(t, reused.Payload)
	PutMessage(reused)
}
