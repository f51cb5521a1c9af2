package handler

import (
	"context"
	"log"

	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/types"
)

// handleGetTopRooms 处理获取房间积分榜
func (h *Handler) handleGetTopRooms(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.GetTopRoomsPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	limit := payload.Limit
	if limit <= 0 {
		limit = h.game.TopRoomsLimit
	}

	entries := make([]protocol.RoomScoreEntry, 0, limit)
	if h.leaderboard != nil {
		scores, err := h.leaderboard.TopRooms(context.Background(), limit)
		if err != nil {
			log.Printf("查询积分榜失败: %v", err)
			client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeUnknown))
			return
		}
		for i, s := range scores {
			entries = append(entries, protocol.RoomScoreEntry{
				Rank:   i + 1,
				RoomID: s.RoomID,
				Score:  s.Score,
			})
		}
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgTopRoomsResult, protocol.TopRoomsResultPayload{
		Rooms: entries,
	}))
}

// handleGetOnlineCount 处理获取在线人数
func (h *Handler) handleGetOnlineCount(client types.ClientInterface) {
	client.SendMessage(codec.MustNewMessage(protocol.MsgOnlineCount, protocol.OnlineCountPayload{
		Count: h.server.GetOnlineCount(),
	}))
}
