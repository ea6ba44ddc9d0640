package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetDelete(t *testing.T) {
	t.Parallel()

	s := NewStore()
	r := NewRoom("test", testRange(t), 3)

	assert.Nil(t, s.Get(r.ID))
	assert.Zero(t, s.Len())

	s.Put(r)
	assert.Equal(t, r, s.Get(r.ID))
	assert.Equal(t, 1, s.Len())

	s.Delete(r.ID)
	assert.Nil(t, s.Get(r.ID))
	assert.Zero(t, s.Len())
}

func TestStore_ListAvailable(t *testing.T) {
	t.Parallel()

	s := NewStore()

	open := NewRoom("open", testRange(t), 3)
	open.CreatedAt = time.Now().Add(-time.Minute)
	_, err := open.Join(testPlayer(t, "Alice"))
	require.NoError(t, err)
	s.Put(open)

	newer := NewRoom("newer", testRange(t), 3)
	_, err = newer.Join(testPlayer(t, "Bob"))
	require.NoError(t, err)
	s.Put(newer)

	full := NewRoom("full", testRange(t), 3)
	_, err = full.Join(testPlayer(t, "Carol"))
	require.NoError(t, err)
	_, err = full.Join(testPlayer(t, "Dave"))
	require.NoError(t, err)
	s.Put(full)

	started := NewRoom("started", testRange(t), 3)
	started.Started = true
	s.Put(started)

	rooms := s.ListAvailable()
	require.Len(t, rooms, 2)
	// Newest first
	assert.Equal(t, "newer", rooms[0].Name)
	assert.Equal(t, "open", rooms[1].Name)
}

func TestStore_FindByConn(t *testing.T) {
	t.Parallel()

	s := NewStore()
	r := NewRoom("test", testRange(t), 3)
	m, err := r.Join(testPlayer(t, "Alice"))
	require.NoError(t, err)
	m.ConnID = "conn-a"
	s.Put(r)

	assert.Equal(t, r, s.FindByConn("conn-a"))
	assert.Nil(t, s.FindByConn("conn-x"))
	assert.Nil(t, s.FindByConn(""))
}

func TestStore_CleanupStale(t *testing.T) {
	t.Parallel()

	s := NewStore()

	stale := NewRoom("stale", testRange(t), 3)
	stale.CreatedAt = time.Now().Add(-time.Hour)
	s.Put(stale)

	fresh := NewRoom("fresh", testRange(t), 3)
	s.Put(fresh)

	// Started rooms are never reaped, however old
	playing := NewRoom("playing", testRange(t), 3)
	playing.CreatedAt = time.Now().Add(-time.Hour)
	playing.Started = true
	s.Put(playing)

	removed := s.CleanupStale(10 * time.Minute)
	require.Len(t, removed, 1)
	assert.Equal(t, "stale", removed[0].Name)

	assert.Nil(t, s.Get(stale.ID))
	assert.NotNil(t, s.Get(fresh.ID))
	assert.NotNil(t, s.Get(playing.ID))
}
