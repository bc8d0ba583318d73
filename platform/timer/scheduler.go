package timer

import (
	"sync"
	"time"
)

// Handler runs when a room's timer expires. gen identifies the arming that
// fired; pass it to Expire to find out whether the fire is still current.
type Handler func(roomID string, gen uint64)

type entry struct {
	timer *time.Timer
	gen   uint64
}

// Scheduler keeps at most one armed turn timer per room.
type Scheduler struct {
	handler Handler

	mu      sync.Mutex
	rooms   map[string]*entry
	gen     uint64
	stopped bool
}

func NewScheduler(handler Handler) *Scheduler {
	return &Scheduler{handler: handler, rooms: make(map[string]*entry)}
}

// Arm cancels any timer the room already has and starts a new one.
func (s *Scheduler) Arm(roomID string, d time.Duration) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return 0
	}
	if e, ok := s.rooms[roomID]; ok {
		e.timer.Stop()
	}

	s.gen++
	gen := s.gen
	s.rooms[roomID] = &entry{
		gen:   gen,
		timer: time.AfterFunc(d, func() { s.handler(roomID, gen) }),
	}
	return gen
}

// Cancel disarms the room's timer. Cancelling an idle room is a no-op.
func (s *Scheduler) Cancel(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.rooms[roomID]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.rooms, roomID)
	return true
}

// Expire claims a fire. It succeeds only if gen is still the room's armed
// generation, and leaves the room idle when it does.
func (s *Scheduler) Expire(roomID string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.rooms[roomID]
	if !ok || e.gen != gen {
		return false
	}
	delete(s.rooms, roomID)
	return true
}

func (s *Scheduler) Armed(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rooms[roomID]
	return ok
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// Stop disarms every room and refuses further arming.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.rooms {
		e.timer.Stop()
		delete(s.rooms, id)
	}
	s.stopped = true
}
