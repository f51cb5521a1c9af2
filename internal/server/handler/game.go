package handler

import (
	"context"
	"fmt"
	"log"

	"github.com/palemoky/pixel-paint/internal/game/tiles"
	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/types"
)

// handleGeneratePreset 处理生成目标图案，仅房主可用
// 非房主的请求静默丢弃：不报错也不广播，沿用线上行为
func (h *Handler) handleGeneratePreset(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.GeneratePresetPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if payload.RoomID == "" || payload.PlayerID == "" || payload.MapData == nil {
		h.sendOpError(client, "generatePreset", protocol.ErrCodeMissingParams, "Missing Variables")
		return
	}

	if !h.server.GroupExists(payload.RoomID) {
		h.sendOpError(client, "generatePreset", protocol.ErrCodeRoomNotFound,
			fmt.Sprintf("This room %s does not exist.", payload.RoomID))
		return
	}

	// 广播组存在但注册表没有会话，说明两份状态脱节了，按房间不存在处理
	sess, err := h.registry.Get(payload.RoomID)
	if err != nil {
		h.sendOpError(client, "generatePreset", protocol.ErrCodeRoomNotFound,
			fmt.Sprintf("This room %s does not exist.", payload.RoomID))
		return
	}

	if !sess.IsHost(payload.PlayerID) {
		return
	}

	preset := tiles.Generate(payload.MapData, h.game.DefaultRows, h.game.DefaultColumns)

	// 加分和记名在同一临界区里完成
	score := sess.RecordPreset(preset.Name)
	h.registry.Mirror(sess)

	if h.leaderboard != nil {
		roomID := payload.RoomID
		go func() { _ = h.leaderboard.IncrRoomScore(context.Background(), roomID) }()
	}

	log.Printf("🎨 房间 %s 第 %d 次生成图案 %s", payload.RoomID, score, preset.Name)

	h.server.BroadcastToGroup(payload.RoomID, codec.MustNewMessage(protocol.MsgPresetGenerated, preset))
}

// handleSelectTile 处理选中格子
// 最高频的热路径，按线上协议不做任何校验直接转发；
// 房间不存在时向空组广播等于无操作
func (h *Handler) handleSelectTile(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.SelectTilePayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.server.BroadcastToGroup(payload.RoomID, codec.MustNewMessage(protocol.MsgTileSelected, protocol.TileSelectedPayload{
		Player: payload.PlayerID,
		Tile:   payload.Tile,
	}))
}
