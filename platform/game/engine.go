package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/DedS3t/marble-backend/platform/board"
	"github.com/DedS3t/marble-backend/platform/cards"
	"github.com/DedS3t/marble-backend/platform/timer"
	log "github.com/sirupsen/logrus"
)

// Store persists one GameState per room. It does no locking of its own.
type Store interface {
	Load(ctx context.Context, roomID string) (*models.GameState, error)
	Save(ctx context.Context, roomID string, state *models.GameState) error
	Delete(ctx context.Context, roomID string) error
	Exists(ctx context.Context, roomID string) (bool, error)
	Touch(ctx context.Context, roomID string) error
}

// Broadcaster delivers a notification to every member of a room.
type Broadcaster interface {
	Broadcast(roomID string, n models.Notification) error
}

type Option func(*Engine)

func WithTurnDurations(first, rest time.Duration) Option {
	return func(e *Engine) {
		e.firstTurn = first
		e.turnDuration = rest
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithDice replaces the dice, mostly for tests.
func WithDice(roll func() (int, int)) Option {
	return func(e *Engine) { e.dice = roll }
}

const timerActionTimeout = 10 * time.Second

// Engine is the only writer of game state. Every mutation of a room runs
// through apply while holding that room's lock.
type Engine struct {
	store   Store
	catalog board.Catalog
	deck    *cards.Deck
	bc      Broadcaster
	timers  *timer.Scheduler
	locks   *roomLocks

	firstTurn    time.Duration
	turnDuration time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
	dice  func() (int, int)
}

func NewEngine(store Store, catalog board.Catalog, deck *cards.Deck, bc Broadcaster, opts ...Option) *Engine {
	e := &Engine{
		store:        store,
		catalog:      catalog,
		deck:         deck,
		bc:           bc,
		locks:        newRoomLocks(),
		firstTurn:    35 * time.Second,
		turnDuration: 30 * time.Second,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.dice == nil {
		e.dice = func() (int, int) {
			e.rngMu.Lock()
			defer e.rngMu.Unlock()
			return e.rng.Intn(6) + 1, e.rng.Intn(6) + 1
		}
	}
	e.timers = timer.NewScheduler(e.onTurnTimeout)
	return e
}

// Close disarms every turn timer.
func (e *Engine) Close() {
	e.timers.Stop()
}

// TimerArmed reports whether room has a pending turn timeout.
func (e *Engine) TimerArmed(roomID string) bool {
	return e.timers.Armed(roomID)
}

// mutation collects what an action produced besides the state change itself.
type mutation struct {
	notes    []models.Notification
	advanced bool
}

func (m *mutation) notify(typ string, payload interface{}) {
	m.notes = append(m.notes, models.NewNotification(typ, payload))
}

type mutator func(ctx context.Context, st *models.GameState, m *mutation) error

func (e *Engine) apply(ctx context.Context, roomID string, fn mutator) error {
	release, err := e.locks.acquire(ctx, roomID)
	if err != nil {
		return err
	}
	defer release()
	return e.applyLocked(ctx, roomID, fn)
}

// applyLocked runs load, mutate, save, then the post-save checks. The room
// lock must be held.
func (e *Engine) applyLocked(ctx context.Context, roomID string, fn mutator) error {
	st, err := e.store.Load(ctx, roomID)
	if err != nil {
		return err
	}
	if st.Status == models.StatusFinished {
		return models.InvalidState("game %s is finished", roomID)
	}

	var m mutation
	if err := fn(ctx, st, &m); err != nil {
		log.WithField("room", roomID).WithError(err).Info("action rejected")
		return err
	}
	if err := e.store.Save(ctx, roomID, st); err != nil {
		return err
	}
	e.publish(roomID, m.notes)
	e.afterSave(ctx, st, &m)
	return nil
}

// afterSave settles bankruptcies, then checks for a winner, then arms the
// next turn timer if the turn moved on. Failures here are logged only; the
// saved state stands.
func (e *Engine) afterSave(ctx context.Context, st *models.GameState, m *mutation) {
	logger := log.WithField("room", st.RoomID)

	if bankrupt := settleBankruptcies(st); len(bankrupt) > 0 {
		var settled mutation
		for _, b := range bankrupt {
			settled.notify(models.TypeBankruptcy, b)
		}
		// a player who went broke on their own turn hands it on right away
		if cur := st.CurrentPlayer(); cur != nil && !cur.Active && len(st.ActivePlayers()) > 0 {
			e.advanceTurn(st, &settled)
			m.advanced = true
		}
		if err := e.store.Save(ctx, st.RoomID, st); err != nil {
			logger.WithError(err).Error("save after bankruptcy failed")
		}
		e.publish(st.RoomID, settled.notes)
	}

	if v, ok := CheckVictory(st); ok {
		e.finish(ctx, st, v)
		return
	}

	if m.advanced {
		e.timers.Arm(st.RoomID, e.turnDuration)
	}
}

func (e *Engine) finish(ctx context.Context, st *models.GameState, v Victory) {
	logger := log.WithFields(log.Fields{"room": st.RoomID, "winner": v.Winner.ID, "reason": v.Reason})

	st.Status = models.StatusFinished
	if err := e.store.Save(ctx, st.RoomID, st); err != nil {
		logger.WithError(err).Error("save finished game failed")
	}
	e.publish(st.RoomID, []models.Notification{
		models.NewNotification(models.TypeGameEnd, models.GameEnd{Winner: v.Winner.Name, Reason: v.Reason}),
	})
	e.timers.Cancel(st.RoomID)
	if err := e.store.Delete(ctx, st.RoomID); err != nil {
		logger.WithError(err).Error("purge finished game failed")
	}
	logger.Info("game finished")
}

func (e *Engine) publish(roomID string, notes []models.Notification) {
	for _, n := range notes {
		if err := e.bc.Broadcast(roomID, n); err != nil {
			log.WithFields(log.Fields{"room": roomID, "type": n.Type}).WithError(err).Error("broadcast failed")
		}
	}
}

// onTurnTimeout is the timer path into the engine. It only advances the turn
// if its generation is still the armed one once it holds the room lock. A
// fire that claimed the timer but could not save arms a new one.
func (e *Engine) onTurnTimeout(roomID string, gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), timerActionTimeout)
	defer cancel()
	logger := log.WithFields(log.Fields{"room": roomID, "gen": gen})

	release, err := e.locks.acquire(ctx, roomID)
	if err != nil {
		logger.WithError(err).Error("turn timeout could not lock room")
		e.timers.Arm(roomID, e.turnDuration)
		return
	}
	defer release()

	if !e.timers.Expire(roomID, gen) {
		logger.Debug("stale turn timeout ignored")
		return
	}

	err = e.applyLocked(ctx, roomID, func(_ context.Context, st *models.GameState, m *mutation) error {
		e.advanceTurn(st, m)
		return nil
	})
	switch {
	case errors.Is(err, models.ErrNotFound):
		logger.Error("turn timeout for a room with no game state")
	case errors.Is(err, models.ErrInvalidState):
		logger.Debug("turn timeout for a finished game")
	case err != nil:
		logger.WithError(err).Error("turn timeout failed, retrying next period")
		e.timers.Arm(roomID, e.turnDuration)
	}
}

func (e *Engine) shuffle(n int, swap func(i, j int)) {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	e.rng.Shuffle(n, swap)
}

func (e *Engine) newBoard(tiles []models.Tile) ([]models.Tile, error) {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return board.NewBoard(tiles, e.rng)
}
