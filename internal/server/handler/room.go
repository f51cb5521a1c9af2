package handler

import (
	"fmt"
	"log"

	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/types"
)

// handleCreateRoom 处理创建房间
// 除了消息结构之外不做任何校验，playerId 照单全收
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	sess := h.registry.Create(payload.PlayerID, payload.GameMode)

	// 创建者直接进广播组，房间号只回给创建者
	h.server.JoinGroup(sess.RoomID, client)
	client.SendMessage(codec.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomID: sess.RoomID,
	}))
}

// handleJoinRoom 处理加入房间
// 房间是否存在以广播组为准，注册表只是会话状态的旁路
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if payload.RoomID == "" || payload.PlayerID == "" {
		h.sendOpError(client, "joinRoom", protocol.ErrCodeMissingParams, "Missing Variables")
		return
	}

	if !h.server.GroupExists(payload.RoomID) {
		h.sendOpError(client, "joinRoom", protocol.ErrCodeRoomNotFound,
			fmt.Sprintf("This room %s does not exist.", payload.RoomID))
		return
	}

	h.server.JoinGroup(payload.RoomID, client)

	// 注册表认识这个房间时顺带登记成员；
	// 只存在广播组、不存在会话的房间照样放行
	if sess, err := h.registry.Get(payload.RoomID); err == nil {
		sess.AddMember(payload.PlayerID)
		h.registry.Mirror(sess)
	}

	log.Printf("👤 玩家 %s 加入房间 %s", payload.PlayerID, payload.RoomID)

	// 广播给全房间，包括刚加入的这个连接
	h.server.BroadcastToGroup(payload.RoomID, codec.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		PlayerID: payload.PlayerID,
	}))
}
