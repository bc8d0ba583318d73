package cache

import (
	"context"
	"testing"
	"time"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*GameStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	pool := CreateRedisPool(mr.Addr(), 2)
	t.Cleanup(func() { pool.Close() })
	return NewGameStore(pool, 30*time.Minute), mr
}

func sampleState(roomID string) *models.GameState {
	return &models.GameState{
		RoomID:      roomID,
		Status:      models.StatusPlaying,
		GameTurn:    1,
		PlayerOrder: []string{"a", "b"},
		Players: map[string]*models.PlayerState{
			"a": {ID: "a", Name: "alice", Money: 100, Active: true, Lands: []int{1}},
			"b": {ID: "b", Name: "bob", Money: 200, Active: true},
		},
		Board: []models.Tile{{Name: "Start", Type: models.TileStart, Building: models.Field}},
	}
}

func TestGameStoreRoundTrip(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "r1", sampleState("r1")))
	assert.True(t, mr.Exists("room:map:r1"))
	assert.Equal(t, 30*time.Minute, mr.TTL("room:map:r1"))

	got, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Players["a"].Name)
	assert.Equal(t, []int{1}, got.Players["a"].Lands)
	assert.Equal(t, models.StatusPlaying, got.Status)
}

func TestGameStoreLoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGameStoreLastWriteWins(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := sampleState("r1")
	second := sampleState("r1")
	second.GameTurn = 7

	require.NoError(t, store.Save(ctx, "r1", first))
	require.NoError(t, store.Save(ctx, "r1", second))

	got, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 7, got.GameTurn)
}

func TestGameStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "r1", sampleState("r1")))
	mr.FastForward(20 * time.Minute)
	require.NoError(t, store.Touch(ctx, "r1"))
	mr.FastForward(20 * time.Minute)

	ok, err := store.Exists(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(31 * time.Minute)
	ok, err = store.Exists(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, store.Touch(ctx, "r1"), models.ErrNotFound)
}

func TestGameStoreDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "r1", sampleState("r1")))
	require.NoError(t, store.Delete(ctx, "r1"))
	require.NoError(t, store.Delete(ctx, "r1"))

	ok, err := store.Exists(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)
}
