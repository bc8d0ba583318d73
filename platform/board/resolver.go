package board

import (
	"github.com/DedS3t/marble-backend/app/models"
	log "github.com/sirupsen/logrus"
)

// Landing describes what happened when a player arrived on a tile.
type Landing struct {
	From        int
	Position    int
	TileType    models.TileType
	PassedStart bool
	Salary      int64
	Toll        int64
	Owner       string
	Purchasable bool
	Price       int64
	Jailed      bool
}

// Chance reports whether the landing calls for a card draw.
func (l Landing) Chance() bool {
	return l.TileType == models.TileChance
}

// Salary is the base salary scaled by the room's current economic effect.
func Salary(state *models.GameState) int64 {
	m := state.Economy.SalaryMultiplier
	if m <= 0 {
		m = 1
	}
	return int64(float64(models.BaseSalary) * m)
}

// Move walks p by steps (negative steps walk backwards) and resolves the
// landing. Salary is paid once when a forward move wraps past the start.
func Move(state *models.GameState, p *models.PlayerState, steps int) Landing {
	from := p.Position
	raw := from + steps
	pos := ((raw % models.BoardSize) + models.BoardSize) % models.BoardSize

	l := Landing{From: from, Position: pos}
	if steps > 0 && raw >= models.BoardSize {
		l.PassedStart = true
		l.Salary = Salary(state)
		p.Money += l.Salary
	}
	p.Position = pos
	resolve(state, p, &l)
	return l
}

// MoveAbsolute puts p on position. Salary is paid only when position is the
// start tile.
func MoveAbsolute(state *models.GameState, p *models.PlayerState, position int) (Landing, error) {
	if position < 0 || position >= models.BoardSize {
		return Landing{}, models.InvalidAction("position %d is off the board", position)
	}
	l := Landing{From: p.Position, Position: position}
	if position == models.StartPosition {
		l.PassedStart = true
		l.Salary = Salary(state)
		p.Money += l.Salary
	}
	p.Position = position
	resolve(state, p, &l)
	return l, nil
}

func resolve(state *models.GameState, p *models.PlayerState, l *Landing) {
	tile, ok := state.Tile(l.Position)
	if !ok {
		return
	}
	l.TileType = tile.Type

	switch tile.Type {
	case models.TileJail:
		SendToJail(p)
		l.Jailed = true
	case models.TileNormal, models.TileSpecial:
		if tile.OwnerID == "" {
			l.Purchasable = true
			l.Price = tile.Toll
			return
		}
		if tile.OwnerID == p.ID || tile.Type == models.TileSpecial {
			l.Owner = tile.OwnerID
			return
		}
		owner, ok := state.Players[tile.OwnerID]
		if !ok || !owner.Active {
			return
		}
		l.Owner = owner.ID
		l.Toll = tile.Toll
		if p.Money < tile.Toll {
			log.WithFields(log.Fields{
				"room":   state.RoomID,
				"player": p.ID,
				"tile":   tile.Position,
				"toll":   tile.Toll,
				"money":  p.Money,
			}).Warn("toll exceeds balance")
		}
		p.Money -= tile.Toll
		owner.Money += tile.Toll
	}
}

func SendToJail(p *models.PlayerState) {
	p.InJail = true
	p.JailTurns = models.JailTurns
	p.Position = models.JailPosition
}
