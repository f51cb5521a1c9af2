package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FreshSessionShape(t *testing.T) {
	s := New("room-1", "alice", 1)

	assert.Equal(t, "room-1", s.RoomID)
	assert.Equal(t, "alice", s.HostID)
	assert.Equal(t, 1, s.GameMode)
	assert.Equal(t, []string{"alice"}, s.Members())
	assert.Equal(t, 0, s.Score())
	assert.Empty(t, s.UsedPresets())
	assert.True(t, s.IsHost("alice"))
	assert.False(t, s.IsHost("bob"))
}

func TestAddMember_JoinOrderPreserved(t *testing.T) {
	s := New("room-1", "alice", 0)
	s.AddMember("bob")
	s.AddMember("carol")
	s.AddMember("bob") // re-joins are recorded, not deduped

	assert.Equal(t, []string{"alice", "bob", "carol", "bob"}, s.Members())
}

func TestRecordPreset_ScoreAndNameMoveTogether(t *testing.T) {
	s := New("room-1", "alice", 0)

	score := s.RecordPreset("smiley")
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, []string{"smiley"}, s.UsedPresets())

	score = s.RecordPreset("smiley") // repeats are tracked, not rejected
	assert.Equal(t, 2, score)
	assert.Equal(t, []string{"smiley", "smiley"}, s.UsedPresets())
}

func TestRecordPreset_Concurrent(t *testing.T) {
	s := New("room-1", "alice", 0)

	const n = 100
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordPreset("p")
		}()
	}
	wg.Wait()

	assert.Equal(t, n, s.Score())
	assert.Len(t, s.UsedPresets(), n)
}

func TestSnapshot_CopiesState(t *testing.T) {
	s := New("room-1", "alice", 2)
	s.AddMember("bob")
	s.RecordPreset("smiley")

	snap := s.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, "room-1", snap.RoomID)
	assert.Equal(t, "alice", snap.HostID)
	assert.Equal(t, 2, snap.GameMode)
	assert.Equal(t, []string{"alice", "bob"}, snap.Members)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, []string{"smiley"}, snap.UsedPresets)

	// Mutating the snapshot must not leak back into the session
	snap.Members[0] = "mallory"
	assert.Equal(t, []string{"alice", "bob"}, s.Members())
}
