package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hi-lo/internal/game"
	"github.com/palemoky/hi-lo/internal/game/room"
)

// newTestRedis spins up an in-memory redis and a store bound to it.
func newTestRedis(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func newTestRoom(t *testing.T) *room.Room {
	t.Helper()

	rng, err := game.NewRange(1, 10)
	require.NoError(t, err)
	r := room.NewRoom("test room", rng, 3)

	alice, err := game.NewPlayer("Alice")
	require.NoError(t, err)
	m, err := r.Join(alice)
	require.NoError(t, err)
	m.ConnID = "conn-a"

	bob, err := game.NewPlayer("Bob")
	require.NoError(t, err)
	_, err = r.Join(bob)
	require.NoError(t, err)

	r.StartMatch(7)
	return r
}

func TestRedisStore_SaveLoadRoom(t *testing.T) {
	t.Parallel()

	rs := newTestRedis(t)
	ctx := context.Background()
	r := newTestRoom(t)

	require.NoError(t, rs.SaveRoom(ctx, r))

	snap, err := rs.LoadRoom(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, r.ID, snap.ID)
	assert.Equal(t, "test room", snap.Name)
	require.Len(t, snap.Members, 2)
	assert.Equal(t, "Alice", snap.Members[0].Name)
	require.NotNil(t, snap.Match)
	assert.Equal(t, 7, snap.Match.MysteryNumber)
}

func TestRedisStore_LoadMissingRoom(t *testing.T) {
	t.Parallel()

	rs := newTestRedis(t)
	snap, err := rs.LoadRoom(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisStore_DeleteRoom(t *testing.T) {
	t.Parallel()

	rs := newTestRedis(t)
	ctx := context.Background()
	r := newTestRoom(t)

	require.NoError(t, rs.SaveRoom(ctx, r))
	require.NoError(t, rs.DeleteRoom(ctx, r.ID))

	snap, err := rs.LoadRoom(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisStore_GetAllRoomIDs(t *testing.T) {
	t.Parallel()

	rs := newTestRedis(t)
	ctx := context.Background()

	r1 := newTestRoom(t)
	r2 := newTestRoom(t)
	require.NoError(t, rs.SaveRoom(ctx, r1))
	require.NoError(t, rs.SaveRoom(ctx, r2))

	ids, err := rs.GetAllRoomIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{r1.ID, r2.ID}, ids)
}
