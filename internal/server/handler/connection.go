package handler

import (
	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/types"
)

// handlePing 处理心跳消息：纯活性探测，不碰任何状态
func (h *Handler) handlePing(client types.ClientInterface) {
	client.SendMessage(codec.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		Message: "pong",
	}))
}
