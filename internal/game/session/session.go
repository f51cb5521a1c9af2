package session

import (
	"sync"
	"time"

	"github.com/palemoky/pixel-paint/internal/storage"
)

// GameSession 一个房间的游戏会话
// 可变字段由会话自身的锁保护，临界区覆盖完整的一次操作
type GameSession struct {
	RoomID    string    // 房间号，注册表键 + 广播组名
	HostID    string    // 房主，创建后不变，唯一能生成图案的玩家
	GameMode  int       // 规则变体，创建后不变
	CreatedAt time.Time

	mu          sync.RWMutex
	members     []string // 按加入顺序，只增不减：本核心没有离开语义
	score       int
	usedPresets []string // 已下发的图案名，允许重复，只做登记
}

// New 创建会话，创建者即房主也是第一个成员
func New(roomID, hostID string, gameMode int) *GameSession {
	return &GameSession{
		RoomID:    roomID,
		HostID:    hostID,
		GameMode:  gameMode,
		CreatedAt: time.Now(),
		members:   []string{hostID},
	}
}

// IsHost 是否房主
func (s *GameSession) IsHost(playerID string) bool {
	return playerID == s.HostID
}

// AddMember 登记新成员
func (s *GameSession) AddMember(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, playerID)
}

// Members 返回成员列表副本
func (s *GameSession) Members() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.members...)
}

// Score 当前积分
func (s *GameSession) Score() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

// UsedPresets 返回已用图案名副本
func (s *GameSession) UsedPresets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.usedPresets...)
}

// RecordPreset 登记一次成功的图案生成：加分并记名
// 两步必须在同一临界区内完成，返回更新后的积分
func (s *GameSession) RecordPreset(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score++
	s.usedPresets = append(s.usedPresets, name)
	return s.score
}

// Snapshot 导出用于 Redis 镜像的只读数据
func (s *GameSession) Snapshot() *storage.SessionData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &storage.SessionData{
		RoomID:      s.RoomID,
		HostID:      s.HostID,
		GameMode:    s.GameMode,
		Members:     append([]string(nil), s.members...),
		Score:       s.score,
		UsedPresets: append([]string(nil), s.usedPresets...),
		CreatedAt:   s.CreatedAt.Unix(),
	}
}
