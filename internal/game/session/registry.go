package session

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/palemoky/pixel-paint/internal/apperrors"
	"github.com/palemoky/pixel-paint/internal/storage"
)

// Registry 进程内的房间注册表，roomID → GameSession
// 房间只增不删：本核心没有解散路径，生命周期与进程一致
type Registry struct {
	store *storage.RedisStore // 可为 nil（纯内存模式 / 测试）

	mu       sync.RWMutex
	sessions map[string]*GameSession
}

// NewRegistry 创建注册表
func NewRegistry(store *storage.RedisStore) *Registry {
	return &Registry{
		store:    store,
		sessions: make(map[string]*GameSession),
	}
}

// Create 生成房间号并登记会话，总是成功
func (r *Registry) Create(hostID string, gameMode int) *GameSession {
	roomID := generateRoomID()
	s := New(roomID, hostID, gameMode)

	r.mu.Lock()
	r.sessions[roomID] = s
	r.mu.Unlock()

	r.Mirror(s)

	log.Printf("🏠 房间 %s 已创建，房主 %s (模式 %d)", roomID, hostID, gameMode)
	return s
}

// Exists 房间是否在注册表中
func (r *Registry) Exists(roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[roomID]
	return ok
}

// Get 获取会话，不存在时返回 ErrRoomNotFound
func (r *Registry) Get(roomID string) (*GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[roomID]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return s, nil
}

// Count 当前房间数
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Mirror 异步镜像会话到 Redis，尽力而为，失败不影响游戏
func (r *Registry) Mirror(s *GameSession) {
	if r.store == nil {
		return
	}
	snapshot := s.Snapshot()
	go func() { _ = r.store.SaveSession(context.Background(), snapshot) }()
}

// generateRoomID 生成房间号
// 服务端生成的不透明字符串，客户端从不自行构造
func generateRoomID() string {
	return "room-" + uuid.NewString()
}
