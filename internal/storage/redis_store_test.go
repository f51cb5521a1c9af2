package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewRedisStore(client), mr
}

func TestRedisStore_SaveLoadDeleteSession(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	data := &SessionData{
		RoomID:      "room-1",
		HostID:      "alice",
		GameMode:    1,
		Members:     []string{"alice", "bob"},
		Score:       2,
		UsedPresets: []string{"smiley", "heart"},
		CreatedAt:   1700000000,
	}

	// Save
	require.NoError(t, store.SaveSession(ctx, data))

	// Load
	loaded, err := store.LoadSession(ctx, "room-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, data, loaded)

	// Delete
	require.NoError(t, store.DeleteSession(ctx, "room-1"))
	loaded, err = store.LoadSession(ctx, "room-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_LoadMissingSession(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()

	loaded, err := store.LoadSession(context.Background(), "room-nope")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_SaveNilIsNoop(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()

	require.NoError(t, store.SaveSession(context.Background(), nil))
}

func TestRedisStore_AllRoomIDs(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &SessionData{RoomID: "room-a"}))
	require.NoError(t, store.SaveSession(ctx, &SessionData{RoomID: "room-b"}))

	ids, err := store.AllRoomIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"room-a", "room-b"}, ids)
}
