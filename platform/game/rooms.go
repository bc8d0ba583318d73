package game

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// roomLocks hands out one lock per room. A lock is dropped from the map once
// nobody holds or waits on it.
type roomLocks struct {
	mu    sync.Mutex
	rooms map[string]*roomLock
}

type roomLock struct {
	sem  *semaphore.Weighted
	refs int
}

func newRoomLocks() *roomLocks {
	return &roomLocks{rooms: make(map[string]*roomLock)}
}

// acquire blocks until the room is free or ctx is done. The returned func
// releases the room.
func (l *roomLocks) acquire(ctx context.Context, roomID string) (func(), error) {
	l.mu.Lock()
	rl, ok := l.rooms[roomID]
	if !ok {
		rl = &roomLock{sem: semaphore.NewWeighted(1)}
		l.rooms[roomID] = rl
	}
	rl.refs++
	l.mu.Unlock()

	if err := rl.sem.Acquire(ctx, 1); err != nil {
		l.drop(roomID, rl)
		return nil, err
	}
	return func() {
		rl.sem.Release(1)
		l.drop(roomID, rl)
	}, nil
}

func (l *roomLocks) drop(roomID string, rl *roomLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rl.refs--
	if rl.refs == 0 {
		delete(l.rooms, roomID)
	}
}

func (l *roomLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rooms)
}
