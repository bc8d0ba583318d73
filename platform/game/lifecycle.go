package game

import (
	"context"
	"fmt"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/DedS3t/marble-backend/platform/economy"
	log "github.com/sirupsen/logrus"
)

const minPlayers = 2

// StartGame snapshots the lobby's players into a new game, in random turn
// order, and arms the first turn timer.
func (e *Engine) StartGame(ctx context.Context, roomID string, players []models.PlayerDto) (*models.GameState, error) {
	if roomID == "" {
		return nil, models.InvalidAction("room id is required")
	}
	if len(players) < minPlayers {
		return nil, models.InvalidAction("need at least %d players, got %d", minPlayers, len(players))
	}
	ids := make(map[string]bool, len(players))
	names := make(map[string]bool, len(players))
	for _, p := range players {
		if p.ID == "" || p.Name == "" {
			return nil, models.InvalidAction("player id and name are required")
		}
		if ids[p.ID] || names[p.Name] {
			return nil, models.InvalidAction("duplicate player %s", p.Name)
		}
		ids[p.ID] = true
		names[p.Name] = true
	}

	release, err := e.locks.acquire(ctx, roomID)
	if err != nil {
		return nil, err
	}
	defer release()

	exists, err := e.store.Exists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.InvalidState("game %s already started", roomID)
	}

	tiles, err := e.catalog.Tiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	b, err := e.newBoard(tiles)
	if err != nil {
		return nil, err
	}

	order := make([]models.PlayerDto, len(players))
	copy(order, players)
	e.shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	st := &models.GameState{
		RoomID:   roomID,
		Status:   models.StatusPlaying,
		Board:    b,
		GameTurn: 1,
		Players:  make(map[string]*models.PlayerState, len(order)),
	}
	for _, p := range order {
		st.PlayerOrder = append(st.PlayerOrder, p.ID)
		st.Players[p.ID] = &models.PlayerState{
			ID:     p.ID,
			Name:   p.Name,
			Money:  models.StartingMoney,
			Lands:  []int{},
			Active: true,
		}
	}
	economy.Cache(st, economy.Current(st.GameTurn))

	if err := e.store.Save(ctx, roomID, st); err != nil {
		return nil, err
	}
	e.publish(roomID, []models.Notification{
		models.NewNotification(models.TypeGameStart, st),
		models.NewNotification(models.TypeTurnChanged, models.TurnChanged{Turn: st.GameTurn, CurrentPlayer: st.CurrentPlayer().Name}),
	})
	e.timers.Arm(roomID, e.firstTurn)

	log.WithFields(log.Fields{"room": roomID, "players": len(order)}).Info("game started")
	return st, nil
}

// DeleteRoom tears a room down. Deleting a room twice is fine.
func (e *Engine) DeleteRoom(ctx context.Context, roomID string) error {
	release, err := e.locks.acquire(ctx, roomID)
	if err != nil {
		return err
	}
	defer release()

	e.timers.Cancel(roomID)
	if err := e.store.Delete(ctx, roomID); err != nil {
		return err
	}
	log.WithField("room", roomID).Info("room deleted")
	return nil
}

// State returns the room's current state and keeps it from expiring.
func (e *Engine) State(ctx context.Context, roomID string) (*models.GameState, error) {
	st, err := e.store.Load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := e.store.Touch(ctx, roomID); err != nil {
		log.WithField("room", roomID).WithError(err).Warn("refresh game ttl failed")
	}
	return st, nil
}
