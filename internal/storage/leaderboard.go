package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	roomScoreKey = "leaderboard:rooms"
)

// RoomScore 积分榜条目
type RoomScore struct {
	RoomID string
	Score  int
}

// Leaderboard 房间积分榜（ZSET，按累计生成次数排序）
type Leaderboard struct {
	redis *redis.Client
}

// NewLeaderboard 创建积分榜
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{redis: client}
}

// IncrRoomScore 房间积分 +1（每次成功生成图案调用一次）
func (lb *Leaderboard) IncrRoomScore(ctx context.Context, roomID string) error {
	return lb.redis.ZIncrBy(ctx, roomScoreKey, 1, roomID).Err()
}

// TopRooms 按积分从高到低取前 limit 个房间
func (lb *Leaderboard) TopRooms(ctx context.Context, limit int) ([]RoomScore, error) {
	if limit <= 0 {
		return nil, nil
	}

	results, err := lb.redis.ZRevRangeWithScores(ctx, roomScoreKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]RoomScore, 0, len(results))
	for _, z := range results {
		roomID, ok := z.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, RoomScore{RoomID: roomID, Score: int(z.Score)})
	}
	return scores, nil
}

// RoomScore 查询单个房间的积分
func (lb *Leaderboard) RoomScore(ctx context.Context, roomID string) (int, error) {
	score, err := lb.redis.ZScore(ctx, roomScoreKey, roomID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return int(score), nil
}
