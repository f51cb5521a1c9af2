package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pixel-paint/internal/apperrors"
)

func TestRegistry_CreateUniqueRoomIDs(t *testing.T) {
	r := NewRegistry(nil)

	seen := map[string]bool{}
	for range 1000 {
		s := r.Create("alice", 1)
		assert.False(t, seen[s.RoomID], "room ID %s was handed out twice", s.RoomID)
		seen[s.RoomID] = true
	}
	assert.Equal(t, 1000, r.Count())
}

func TestRegistry_ExistsAndGet(t *testing.T) {
	r := NewRegistry(nil)

	s := r.Create("alice", 1)
	assert.True(t, r.Exists(s.RoomID))

	got, err := r.Get(s.RoomID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestRegistry_GetMissingRoom(t *testing.T) {
	r := NewRegistry(nil)

	got, err := r.Get("room-nope")
	assert.Nil(t, got)
	require.Error(t, err)

	var gameErr *apperrors.GameError
	require.True(t, errors.As(err, &gameErr))
	assert.Equal(t, apperrors.ErrRoomNotFound, gameErr)

	assert.False(t, r.Exists("room-nope"))
}

func TestRegistry_NoDeletePath(t *testing.T) {
	r := NewRegistry(nil)

	s := r.Create("alice", 1)

	// Rooms live until process teardown; nothing removes them
	assert.True(t, r.Exists(s.RoomID))
	assert.Equal(t, 1, r.Count())
}
