package protocol

// --- 客户端请求 Payloads ---

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	PlayerID string `json:"player_id"` // 创建者即房主
	GameMode int    `json:"game_mode"` // 规则变体（拼图/自由绘制等）
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

// GeneratePresetPayload 生成目标图案请求（仅房主）
type GeneratePresetPayload struct {
	RoomID   string   `json:"room_id"`
	PlayerID string   `json:"player_id"`
	MapData  *MapData `json:"map_data"`
}

// SelectTilePayload 选中格子请求
type SelectTilePayload struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	Tile     Tile   `json:"tile"`
}

// GetTopRoomsPayload 获取房间积分榜请求
type GetTopRoomsPayload struct {
	Limit int `json:"limit"` // 数量，<=0 时服务端取默认值
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	Message string `json:"message"`
}

// PongPayload 心跳响应
type PongPayload struct {
	Message string `json:"message"`
}

// RoomCreatedPayload 房间创建成功响应（只发给创建者）
type RoomCreatedPayload struct {
	RoomID string `json:"room_id"`
}

// RoomJoinedPayload 玩家加入通知（广播给全房间，含新加入者）
type RoomJoinedPayload struct {
	PlayerID string `json:"player_id"`
}

// TileSelectedPayload 格子选中通知
type TileSelectedPayload struct {
	Player string `json:"player"`
	Tile   Tile   `json:"tile"`
}

// OnlineCountPayload 在线人数
type OnlineCountPayload struct {
	Count int `json:"count"`
}

// TopRoomsResultPayload 房间积分榜结果
type TopRoomsResultPayload struct {
	Rooms []RoomScoreEntry `json:"rooms"`
}

// RoomScoreEntry 积分榜条目
type RoomScoreEntry struct {
	Rank   int    `json:"rank"`
	RoomID string `json:"room_id"`
	Score  int    `json:"score"`
}

// ErrorPayload 错误响应（只发给出错的连接，不广播）
type ErrorPayload struct {
	Where   string `json:"where"`            // 出错的操作名
	Code    int    `json:"code"`
	Message string `json:"message"`          // 统一的用户提示
	Detail  string `json:"detail,omitempty"` // 诊断信息
}

// --- 通用数据结构 ---

// Tile 一个格子及其显示状态
type Tile struct {
	Index       int  `json:"index"`       // 行优先编号 row*columns+col
	Highlighted bool `json:"highlighted"` // 是否点亮
}

// Pattern 地图配置里的一张命名图案
type Pattern struct {
	Name  string `json:"name"`
	Tiles []int  `json:"tiles"` // 点亮格子的编号
}

// MapData 地图配置，generatePreset 的输入
type MapData struct {
	Rows     int       `json:"rows"`
	Columns  int       `json:"columns"`
	Patterns []Pattern `json:"patterns,omitempty"`
}

// Preset 生成出的目标图案，presetGenerated 的广播内容
type Preset struct {
	Name  string `json:"name"`
	Tiles []Tile `json:"tiles"`
}
