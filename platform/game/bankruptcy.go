package game

import (
	"github.com/DedS3t/marble-backend/app/models"
	"github.com/DedS3t/marble-backend/platform/board"
	log "github.com/sirupsen/logrus"
)

// settleBankruptcies takes every active player with a negative balance out of
// the game and hands their land back to the bank.
func settleBankruptcies(st *models.GameState) []models.Bankruptcy {
	var out []models.Bankruptcy
	for _, p := range st.ActivePlayers() {
		if p.Money >= 0 {
			continue
		}
		p.Active = false
		released := board.Release(st, p)
		if released == nil {
			released = []int{}
		}
		out = append(out, models.Bankruptcy{Player: p.Name, ReleasedLands: released})

		log.WithFields(log.Fields{
			"room":     st.RoomID,
			"player":   p.ID,
			"money":    p.Money,
			"released": len(released),
		}).Info("player bankrupt")
	}
	return out
}
