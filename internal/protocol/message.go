package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
// 事件名沿用线上协议的字面量，网页客户端依赖这些名字
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom MessageType = "createRoom" // 创建房间
	MsgJoinRoom   MessageType = "joinRoom"   // 加入房间

	// 游戏操作
	MsgGeneratePreset MessageType = "generatePreset" // 生成目标图案（仅房主）
	MsgSelectTile     MessageType = "selectTile"     // 选中/取消格子

	// 信息查询
	MsgGetTopRooms    MessageType = "getTopRooms"    // 获取房间积分榜
	MsgGetOnlineCount MessageType = "getOnlineCount" // 获取在线人数
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomCreated MessageType = "roomCreated" // 房间创建成功
	MsgRoomJoined  MessageType = "roomJoined"  // 有玩家加入房间

	// 游戏流程
	MsgPresetGenerated MessageType = "presetGenerated" // 新目标图案
	MsgTileSelected    MessageType = "tileSelected"    // 有玩家选中格子

	// 信息查询
	MsgTopRoomsResult MessageType = "topRoomsResult" // 房间积分榜结果
	MsgOnlineCount    MessageType = "onlineCount"    // 在线人数

	// 错误
	MsgError MessageType = "error" // 错误消息
)
