package game

import (
	"github.com/DedS3t/marble-backend/app/models"
)

const (
	ReasonMonopoly     = "MONOPOLY"
	ReasonLastSurvivor = "LAST_SURVIVOR"
	ReasonTurnLimit    = "TURN_LIMIT"
)

type Victory struct {
	Winner *models.PlayerState
	Reason string
}

// CheckVictory tries monopoly, last survivor and the turn limit in that
// order and returns the first that holds.
func CheckVictory(st *models.GameState) (Victory, bool) {
	active := st.ActivePlayers()

	for _, p := range active {
		if ownsAllSpecials(p) {
			return Victory{Winner: p, Reason: ReasonMonopoly}, true
		}
	}

	if len(st.PlayerOrder) >= 2 && len(active) == 1 {
		return Victory{Winner: active[0], Reason: ReasonLastSurvivor}, true
	}

	if st.GameTurn > models.TurnLimit && len(active) > 0 {
		best := active[0]
		for _, p := range active[1:] {
			if TotalAssets(p) > TotalAssets(best) {
				best = p
			}
		}
		return Victory{Winner: best, Reason: ReasonTurnLimit}, true
	}

	return Victory{}, false
}

func ownsAllSpecials(p *models.PlayerState) bool {
	for _, idx := range models.SpecialPositions {
		if !p.Owns(idx) {
			return false
		}
	}
	return true
}

// TotalAssets is cash plus the fixed value of every owned tile.
func TotalAssets(p *models.PlayerState) int64 {
	total := p.Money
	for _, idx := range p.Lands {
		total += models.BaseTileValue(idx)
	}
	return total
}
