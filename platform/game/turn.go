package game

import (
	"context"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/DedS3t/marble-backend/platform/economy"
	log "github.com/sirupsen/logrus"
)

// advanceTurn hands the turn to the next active player. Wrapping past the end
// of the order starts a new turn, and every second turn re-rolls the economy.
// A jailed next player serves one jail turn here.
func (e *Engine) advanceTurn(st *models.GameState, m *mutation) {
	if cur := st.CurrentPlayer(); cur != nil {
		cur.HasRolled = false
	}

	n := len(st.PlayerOrder)
	idx := st.CurrentPlayerIndex
	for i := 0; i < n; i++ {
		idx++
		if idx >= n {
			idx = 0
			st.GameTurn++
			if st.GameTurn%economy.TurnsPerPeriod == 0 {
				economy.Apply(st, economy.Current(st.GameTurn))
				m.notify(models.TypeEconomicUpdate, economy.Update(st))
			} else {
				st.Economy.TurnsRemaining = economy.TurnsRemaining(st.GameTurn)
			}
		}
		if p, ok := st.Players[st.PlayerOrder[idx]]; ok && p.Active {
			break
		}
	}
	st.CurrentPlayerIndex = idx

	next := st.CurrentPlayer()
	next.HasRolled = false
	if next.InJail {
		next.JailTurns--
		if next.JailTurns <= 0 {
			next.InJail = false
			next.JailTurns = 0
		}
	}

	m.notify(models.TypeTurnChanged, models.TurnChanged{Turn: st.GameTurn, CurrentPlayer: next.Name})
	m.advanced = true

	log.WithFields(log.Fields{"room": st.RoomID, "turn": st.GameTurn, "player": next.ID}).Debug("turn advanced")
}

// SkipTurn ends the current player's turn right away.
func (e *Engine) SkipTurn(ctx context.Context, roomID string, req models.SkipTurnRequest) error {
	return e.apply(ctx, roomID, func(_ context.Context, st *models.GameState, m *mutation) error {
		if _, err := currentPlayer(st, req.PlayerName); err != nil {
			return err
		}
		e.advanceTurn(st, m)
		return nil
	})
}
