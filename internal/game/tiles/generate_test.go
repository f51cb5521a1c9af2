package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pixel-paint/internal/protocol"
)

func TestGenerate_FromPattern(t *testing.T) {
	data := &protocol.MapData{
		Rows:    2,
		Columns: 3,
		Patterns: []protocol.Pattern{
			{Name: "smiley", Tiles: []int{0, 2, 4}},
		},
	}

	preset := Generate(data, 8, 8)

	assert.Equal(t, "smiley", preset.Name)
	require.Len(t, preset.Tiles, 6)

	highlighted := map[int]bool{}
	for _, tile := range preset.Tiles {
		assert.Equal(t, tile.Index, preset.Tiles[tile.Index].Index)
		if tile.Highlighted {
			highlighted[tile.Index] = true
		}
	}
	assert.Equal(t, map[int]bool{0: true, 2: true, 4: true}, highlighted)
}

func TestGenerate_PatternIndexOutOfRange(t *testing.T) {
	data := &protocol.MapData{
		Rows:    2,
		Columns: 2,
		Patterns: []protocol.Pattern{
			{Name: "broken", Tiles: []int{1, -1, 99}},
		},
	}

	preset := Generate(data, 8, 8)

	// Out-of-range indices are dropped, valid ones survive
	require.Len(t, preset.Tiles, 4)
	assert.True(t, preset.Tiles[1].Highlighted)
	count := 0
	for _, tile := range preset.Tiles {
		if tile.Highlighted {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGenerate_RandomFallback(t *testing.T) {
	data := &protocol.MapData{Rows: 4, Columns: 4}

	preset := Generate(data, 8, 8)

	assert.NotEmpty(t, preset.Name)
	require.Len(t, preset.Tiles, 16)

	count := 0
	for _, tile := range preset.Tiles {
		if tile.Highlighted {
			count++
		}
	}
	// 16 tiles at 1/4 fill
	assert.Equal(t, 4, count)
}

func TestGenerate_FallbackDimensions(t *testing.T) {
	preset := Generate(nil, 3, 5)
	assert.Len(t, preset.Tiles, 15)

	preset = Generate(&protocol.MapData{Rows: -1, Columns: 0}, 2, 2)
	assert.Len(t, preset.Tiles, 4)
}

func TestGenerate_RandomNamesDiffer(t *testing.T) {
	data := &protocol.MapData{Rows: 2, Columns: 2}

	names := map[string]bool{}
	for range 20 {
		names[Generate(data, 8, 8).Name] = true
	}
	// Random names should not all collide
	assert.Greater(t, len(names), 1)
}
