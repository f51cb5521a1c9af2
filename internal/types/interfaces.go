package types

import (
	"github.com/palemoky/pixel-paint/internal/protocol"
)

// ServerInterface 定义服务器接口（用于打破循环依赖）
// 对 handler 暴露的是广播组原语：加组、群发、组是否存在
type ServerInterface interface {
	IsMaintenanceMode() bool
	GetOnlineCount() int
	JoinGroup(roomID string, client ClientInterface)
	BroadcastToGroup(roomID string, msg *protocol.Message)
	GroupExists(roomID string) bool
}

// ClientInterface 定义客户端接口
type ClientInterface interface {
	GetID() string
	GetName() string
	SendMessage(msg *protocol.Message)
	Close()
}
