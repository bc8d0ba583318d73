package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/gomodule/redigo/redis"
)

const roomKeyPrefix = "room:map:"

func roomKey(roomID string) string {
	return roomKeyPrefix + roomID
}

// GameStore keeps one GameState blob per room. Saves are last-write-wins;
// callers serialize access per room.
type GameStore struct {
	pool *redis.Pool
	ttl  time.Duration
}

func NewGameStore(pool *redis.Pool, ttl time.Duration) *GameStore {
	return &GameStore{pool: pool, ttl: ttl}
}

func (s *GameStore) conn(ctx context.Context) (redis.Conn, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("redis connection: %w", err)
	}
	return conn, nil
}

func (s *GameStore) Load(ctx context.Context, roomID string) (*models.GameState, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	data, err := Get(roomKey(roomID), conn)
	if errors.Is(err, redis.ErrNil) {
		return nil, models.NotFound("game %s not found", roomID)
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", roomID, err)
	}

	var state models.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", roomID, err)
	}
	return &state, nil
}

// Save overwrites the room's state and refreshes its expiry.
func (s *GameStore) Save(ctx context.Context, roomID string, state *models.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", roomID, err)
	}

	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := SetEx(roomKey(roomID), data, s.ttl, conn); err != nil {
		return fmt.Errorf("save game %s: %w", roomID, err)
	}
	return nil
}

func (s *GameStore) Delete(ctx context.Context, roomID string) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := Del(roomKey(roomID), conn); err != nil {
		return fmt.Errorf("delete game %s: %w", roomID, err)
	}
	return nil
}

func (s *GameStore) Exists(ctx context.Context, roomID string) (bool, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	ok, err := Exists(roomKey(roomID), conn)
	if err != nil {
		return false, fmt.Errorf("exists game %s: %w", roomID, err)
	}
	return ok, nil
}

// Touch extends the room's expiry without rewriting it.
func (s *GameStore) Touch(ctx context.Context, roomID string) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	ok, err := Expire(roomKey(roomID), s.ttl, conn)
	if err != nil {
		return fmt.Errorf("touch game %s: %w", roomID, err)
	}
	if !ok {
		return models.NotFound("game %s not found", roomID)
	}
	return nil
}
