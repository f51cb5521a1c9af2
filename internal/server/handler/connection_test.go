package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/testutil"
)

func TestHandlePing_PongToInvokerOnly(t *testing.T) {
	h, gateway, _ := newTestHandler()
	client := &testutil.SimpleClient{ID: "c1"}

	h.handlePing(client)

	pongs := client.MessagesOfType(protocol.MsgPong)
	require.Len(t, pongs, 1)

	payload, err := codec.ParsePayload[protocol.PongPayload](pongs[0])
	require.NoError(t, err)
	assert.Equal(t, "pong", payload.Message)

	// Pure liveness check: no state, no broadcast
	assert.Empty(t, gateway.Broadcasts)
	assert.Empty(t, gateway.Groups)
}
