package server

import (
	"math/rand/v2"
)

// 昵称词库（只出现在服务端日志里，协议层用的是客户端自报的 playerId）
var (
	adjectives = []string{
		"勇敢的", "聪明的", "快乐的", "神秘的", "酷炫的",
		"优雅的", "可爱的", "沉稳的", "活泼的", "机智的",
		"潇洒的", "温柔的", "淡定的", "闪亮的", "迷人的",
	}

	nouns = []string{
		"画家", "像素", "蜡笔", "调色盘", "水彩",
		"油漆刷", "马克笔", "素描", "颜料", "画布",
		"橡皮擦", "喷枪", "粉笔", "墨水", "拼图",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	noun := nouns[rand.IntN(len(nouns))]
	return adj + noun
}
