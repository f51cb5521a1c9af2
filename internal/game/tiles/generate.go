package tiles

import (
	"fmt"
	"math/rand/v2"

	"github.com/palemoky/pixel-paint/internal/protocol"
)

// 随机图案点亮的格子比例，分子/分母
const (
	randomFillNum = 1
	randomFillDen = 4
)

// Generate 从地图配置生成一张目标图案
// 无状态纯函数：优先从配置自带的图案集合里随机挑一张，
// 集合为空时退化为随机点亮的图案。越界的格子编号直接丢弃。
func Generate(data *protocol.MapData, fallbackRows, fallbackCols int) protocol.Preset {
	rows, cols := dims(data, fallbackRows, fallbackCols)
	total := rows * cols

	canvas := make([]protocol.Tile, total)
	for i := range canvas {
		canvas[i] = protocol.Tile{Index: i}
	}

	if data != nil && len(data.Patterns) > 0 {
		pattern := data.Patterns[rand.IntN(len(data.Patterns))]
		for _, idx := range pattern.Tiles {
			if idx >= 0 && idx < total {
				canvas[idx].Highlighted = true
			}
		}
		return protocol.Preset{Name: pattern.Name, Tiles: canvas}
	}

	// 随机图案：大约 1/4 的格子点亮
	count := total * randomFillNum / randomFillDen
	for _, idx := range rand.Perm(total)[:count] {
		canvas[idx].Highlighted = true
	}
	return protocol.Preset{
		Name:  fmt.Sprintf("preset-%08x", rand.Uint32()),
		Tiles: canvas,
	}
}

// dims 取地图尺寸，非法值回退到配置缺省
func dims(data *protocol.MapData, fallbackRows, fallbackCols int) (int, int) {
	rows, cols := 0, 0
	if data != nil {
		rows, cols = data.Rows, data.Columns
	}
	if rows <= 0 {
		rows = fallbackRows
	}
	if cols <= 0 {
		cols = fallbackCols
	}
	return rows, cols
}
