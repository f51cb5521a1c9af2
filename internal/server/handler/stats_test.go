package handler

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pixel-paint/internal/config"
	"github.com/palemoky/pixel-paint/internal/game/session"
	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
	"github.com/palemoky/pixel-paint/internal/storage"
	"github.com/palemoky/pixel-paint/internal/testutil"
)

func TestHandleGetOnlineCount(t *testing.T) {
	h, gateway, _ := newTestHandler()
	gateway.Online = 42
	client := &testutil.SimpleClient{ID: "c1"}

	h.handleGetOnlineCount(client)

	counts := client.MessagesOfType(protocol.MsgOnlineCount)
	require.Len(t, counts, 1)
	payload, err := codec.ParsePayload[protocol.OnlineCountPayload](counts[0])
	require.NoError(t, err)
	assert.Equal(t, 42, payload.Count)
}

func TestHandleGetTopRooms_NoLeaderboard(t *testing.T) {
	h, _, _ := newTestHandler()
	client := &testutil.SimpleClient{ID: "c1"}

	h.handleGetTopRooms(client, codec.MustNewMessage(protocol.MsgGetTopRooms, protocol.GetTopRoomsPayload{}))

	results := client.MessagesOfType(protocol.MsgTopRoomsResult)
	require.Len(t, results, 1)
	payload, err := codec.ParsePayload[protocol.TopRoomsResultPayload](results[0])
	require.NoError(t, err)
	assert.Empty(t, payload.Rooms)
}

func TestHandleGetTopRooms_RankedResults(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	lb := storage.NewLeaderboard(rdb)

	gateway := testutil.NewFakeGateway()
	h := NewHandler(Deps{
		Server:      gateway,
		Registry:    session.NewRegistry(nil),
		Leaderboard: lb,
		Game:        config.Default().Game,
	})

	ctx := context.Background()
	for range 3 {
		require.NoError(t, lb.IncrRoomScore(ctx, "room-a"))
	}
	for range 7 {
		require.NoError(t, lb.IncrRoomScore(ctx, "room-b"))
	}

	client := &testutil.SimpleClient{ID: "c1"}
	h.handleGetTopRooms(client, codec.MustNewMessage(protocol.MsgGetTopRooms, protocol.GetTopRoomsPayload{Limit: 5}))

	results := client.MessagesOfType(protocol.MsgTopRoomsResult)
	require.Len(t, results, 1)
	payload, err := codec.ParsePayload[protocol.TopRoomsResultPayload](results[0])
	require.NoError(t, err)
	require.Len(t, payload.Rooms, 2)
	assert.Equal(t, protocol.RoomScoreEntry{Rank: 1, RoomID: "room-b", Score: 7}, payload.Rooms[0])
	assert.Equal(t, protocol.RoomScoreEntry{Rank: 2, RoomID: "room-a", Score: 3}, payload.Rooms[1])
}
