package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	sessionKeyPrefix = "session:"

	// 会话镜像过期时间
	sessionExpiration = 2 * time.Hour
)

// SessionData 会话数据（用于 Redis 序列化）
// 只是运维镜像，不做跨进程恢复
type SessionData struct {
	RoomID      string   `json:"room_id"`
	HostID      string   `json:"host_id"`
	GameMode    int      `json:"game_mode"`
	Members     []string `json:"members"`
	Score       int      `json:"score"`
	UsedPresets []string `json:"used_presets"`
	CreatedAt   int64    `json:"created_at"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveSession 保存会话镜像到 Redis
func (rs *RedisStore) SaveSession(ctx context.Context, data *SessionData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化会话数据失败: %w", err)
	}

	key := sessionKeyPrefix + data.RoomID
	return rs.client.Set(ctx, key, jsonData, sessionExpiration).Err()
}

// LoadSession 从 Redis 加载会话镜像
func (rs *RedisStore) LoadSession(ctx context.Context, roomID string) (*SessionData, error) {
	key := sessionKeyPrefix + roomID
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 镜像不存在
		}
		return nil, err
	}

	var sessionData SessionData
	if err := json.Unmarshal(data, &sessionData); err != nil {
		return nil, fmt.Errorf("反序列化会话数据失败: %w", err)
	}

	return &sessionData, nil
}

// DeleteSession 从 Redis 删除会话镜像
func (rs *RedisStore) DeleteSession(ctx context.Context, roomID string) error {
	key := sessionKeyPrefix + roomID
	return rs.client.Del(ctx, key).Err()
}

// AllRoomIDs 列出有镜像的房间号
func (rs *RedisStore) AllRoomIDs(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, sessionKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = key[len(sessionKeyPrefix):]
	}
	return ids, nil
}
