package handler

import (
	"log"

	"github.com/palemoky/pixel-paint/internal/config"
	"github.com/palemoky/pixel-paint/internal/game/session"
	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/storage"
	"github.com/palemoky/pixel-paint/internal/types"
)

// Deps 处理器依赖
type Deps struct {
	Server      types.ServerInterface
	Registry    *session.Registry
	Leaderboard *storage.Leaderboard // 可为 nil（纯内存模式 / 测试）
	Game        config.GameConfig
}

// Handler 消息处理器：协议逻辑都在这里
// 校验失败只回给出错的连接，从不广播
type Handler struct {
	server      types.ServerInterface
	registry    *session.Registry
	leaderboard *storage.Leaderboard
	game        config.GameConfig
	handlers    map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps Deps) *Handler {
	h := &Handler{
		server:      deps.Server,
		registry:    deps.Registry,
		leaderboard: deps.Leaderboard,
		game:        deps.Game,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: func(c types.ClientInterface, _ *protocol.Message) { h.handlePing(c) },

		// 房间操作
		protocol.MsgCreateRoom: h.handleCreateRoom,
		protocol.MsgJoinRoom:   h.handleJoinRoom,

		// 游戏操作
		protocol.MsgGeneratePreset: h.handleGeneratePreset,
		protocol.MsgSelectTile:     h.handleSelectTile,

		// 信息查询
		protocol.MsgGetTopRooms:    h.handleGetTopRooms,
		protocol.MsgGetOnlineCount: func(c types.ClientInterface, _ *protocol.Message) { h.handleGetOnlineCount(c) },
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (来自连接: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendOpError 校验失败时发给出错连接的点对点错误
func (h *Handler) sendOpError(client types.ClientInterface, where string, code int, detail string) {
	client.SendMessage(codec.NewOpErrorMessage(where, code, detail))
}
