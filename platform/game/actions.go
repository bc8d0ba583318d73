package game

import (
	"context"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/DedS3t/marble-backend/platform/board"
	"github.com/DedS3t/marble-backend/platform/cards"
	log "github.com/sirupsen/logrus"
)

// currentPlayer resolves name to the active player whose turn it is.
func currentPlayer(st *models.GameState, name string) (*models.PlayerState, error) {
	p := st.PlayerByName(name)
	if p == nil {
		return nil, models.NotFound("player %q not found", name)
	}
	if !p.Active {
		return nil, models.InvalidTurn("player %q is out of the game", name)
	}
	if st.CurrentPlayerID() != p.ID {
		return nil, models.InvalidTurn("it is not %s's turn", name)
	}
	return p, nil
}

func ownerName(st *models.GameState, id string) string {
	if p, ok := st.Players[id]; ok {
		return p.Name
	}
	return ""
}

// drawCard resolves a chance landing on the state already loaded by the
// caller. A broken deck is logged and skipped so the move itself still stands.
func (e *Engine) drawCard(ctx context.Context, st *models.GameState, p *models.PlayerState, m *mutation) {
	res, err := e.deck.Draw(ctx, st, p)
	if err != nil {
		log.WithFields(log.Fields{"room": st.RoomID, "player": p.ID}).WithError(err).Error("card draw failed")
		return
	}
	e.noteCard(st, p, res, m)
}

func (e *Engine) noteCard(st *models.GameState, p *models.PlayerState, res cards.Resolution, m *mutation) {
	payload := models.CardDrawn{
		Drawer:      p.Name,
		CardName:    res.Card.Name,
		Description: res.Card.Description,
		Effect:      res.Card.Effect,
		MoneyChange: res.MoneyChange,
		NewPosition: p.Position,
		Jailed:      res.Jailed,
		Asset:       p.Asset(),
	}
	if res.Landing != nil {
		payload.SalaryBonus = res.Landing.Salary
		payload.Toll = res.Landing.Toll
	}
	if res.RoomWide() {
		payload.Changes = make(map[string]int64, len(res.Changes))
		for id, delta := range res.Changes {
			payload.Changes[ownerName(st, id)] = delta
		}
	}
	if res.Jailed {
		p.HasRolled = true
	}
	m.notify(models.TypeCardDrawn, payload)
	if res.RoomWide() {
		m.notify(models.TypeGameState, st)
	}
}

// RollDice moves the current player. Doubles earn another roll unless the
// move ends in jail.
func (e *Engine) RollDice(ctx context.Context, roomID string, req models.RollDiceRequest) error {
	return e.apply(ctx, roomID, func(ctx context.Context, st *models.GameState, m *mutation) error {
		p, err := currentPlayer(st, req.PlayerName)
		if err != nil {
			return err
		}
		if p.InJail {
			return models.InvalidTurn("%s is in jail", req.PlayerName)
		}
		if p.HasRolled {
			return models.InvalidAction("%s already rolled this turn", req.PlayerName)
		}

		d1, d2 := e.dice()
		double := d1 == d2
		l := board.Move(st, p, d1+d2)
		p.HasRolled = !double || l.Jailed

		m.notify(models.TypeDiceResult, models.DiceResult{
			Roller:      p.Name,
			Dice1:       d1,
			Dice2:       d2,
			Double:      double,
			NewPosition: l.Position,
			SalaryBonus: l.Salary,
			Toll:        l.Toll,
			Owner:       ownerName(st, l.Owner),
			Purchasable: l.Purchasable,
			Price:       l.Price,
			Jailed:      l.Jailed,
			Asset:       p.Asset(),
		})
		if l.Chance() {
			e.drawCard(ctx, st, p, m)
		}
		return nil
	})
}

// TradeLand sells an owned tile to the current player at its land price.
func (e *Engine) TradeLand(ctx context.Context, roomID string, req models.TradeLandRequest) error {
	return e.apply(ctx, roomID, func(_ context.Context, st *models.GameState, m *mutation) error {
		buyer, err := currentPlayer(st, req.BuyerName)
		if err != nil {
			return err
		}
		tr, err := board.SellLand(st, req.LandIndex, buyer)
		if err != nil {
			return err
		}
		m.notify(models.TypeLandTraded, models.LandTraded{
			Buyer:     buyer.Name,
			Seller:    ownerName(st, tr.Seller),
			LandIndex: tr.LandIndex,
			Price:     tr.Price,
		})
		return nil
	})
}

// Construct buys and builds on the tile the current player is standing on.
func (e *Engine) Construct(ctx context.Context, roomID string, req models.ConstructRequest) error {
	return e.apply(ctx, roomID, func(_ context.Context, st *models.GameState, m *mutation) error {
		p, err := currentPlayer(st, req.PlayerName)
		if err != nil {
			return err
		}
		c, err := board.Construct(st, p, req.LandIndex, req.TargetBuildingType)
		if err != nil {
			return err
		}
		m.notify(models.TypeBuildingConstructed, models.BuildingConstructed{
			Player:    p.Name,
			LandIndex: c.LandIndex,
			Level:     c.To,
			Cost:      c.Total(),
			LandCost:  c.LandCost,
			Toll:      st.Board[c.LandIndex].Toll,
			Asset:     p.Asset(),
		})
		return nil
	})
}

// Jail lets a jailed player pay bail. Without enough cash, or without asking
// to escape, the player stays put.
func (e *Engine) Jail(ctx context.Context, roomID string, req models.JailRequest) error {
	return e.apply(ctx, roomID, func(_ context.Context, st *models.GameState, m *mutation) error {
		p, err := currentPlayer(st, req.PlayerName)
		if err != nil {
			return err
		}
		if !p.InJail {
			return models.InvalidAction("%s is not in jail", req.PlayerName)
		}

		escaped := false
		if req.Escape && p.Money >= models.JailBail {
			p.Money -= models.JailBail
			p.InJail = false
			p.JailTurns = 0
			escaped = true
		}
		m.notify(models.TypeJailResult, models.JailResult{
			Player:         p.Name,
			Escaped:        escaped,
			RemainingTurns: p.JailTurns,
			Asset:          p.Asset(),
		})
		return nil
	})
}

// WorldTravel flies a player from the airplane tile to any other tile. It
// takes the place of the turn's roll.
func (e *Engine) WorldTravel(ctx context.Context, roomID string, req models.WorldTravelRequest) error {
	return e.apply(ctx, roomID, func(ctx context.Context, st *models.GameState, m *mutation) error {
		p, err := currentPlayer(st, req.PlayerName)
		if err != nil {
			return err
		}
		if tile, ok := st.Tile(p.Position); !ok || tile.Type != models.TileAirplane {
			return models.InvalidAction("%s is not on the world travel tile", req.PlayerName)
		}
		if p.HasRolled {
			return models.InvalidAction("%s already moved this turn", req.PlayerName)
		}
		if req.DestinationIndex == p.Position {
			return models.InvalidAction("destination is the current tile")
		}

		from := p.Position
		l, err := board.MoveAbsolute(st, p, req.DestinationIndex)
		if err != nil {
			return err
		}
		p.HasRolled = true

		m.notify(models.TypeTravelResult, models.TravelResult{
			Traveler:    p.Name,
			From:        from,
			To:          l.Position,
			SalaryBonus: l.Salary,
			Toll:        l.Toll,
			Owner:       ownerName(st, l.Owner),
			Jailed:      l.Jailed,
			Asset:       p.Asset(),
		})
		if l.Chance() {
			e.drawCard(ctx, st, p, m)
		}
		return nil
	})
}

// Tax charges the player standing on the tax office a share of their cash.
func (e *Engine) Tax(ctx context.Context, roomID string, req models.TaxRequest) error {
	return e.apply(ctx, roomID, func(_ context.Context, st *models.GameState, m *mutation) error {
		p, err := currentPlayer(st, req.PlayerName)
		if err != nil {
			return err
		}
		if tile, ok := st.Tile(p.Position); !ok || tile.Type != models.TileNTS {
			return models.InvalidAction("%s is not on the tax office", req.PlayerName)
		}

		var amount int64
		if p.Money > 0 {
			amount = p.Money * models.TaxPercent / 100
		}
		p.Money -= amount

		m.notify(models.TypeTaxResult, models.TaxResult{
			Player: p.Name,
			Amount: amount,
			Asset:  p.Asset(),
		})
		return nil
	})
}

// UseCard resolves a named immediate card for the current player.
func (e *Engine) UseCard(ctx context.Context, roomID string, req models.UseCardRequest) error {
	return e.apply(ctx, roomID, func(ctx context.Context, st *models.GameState, m *mutation) error {
		p, err := currentPlayer(st, req.PlayerName)
		if err != nil {
			return err
		}
		res, err := e.deck.Use(ctx, st, p, req.CardName)
		if err != nil {
			return err
		}
		e.noteCard(st, p, res, m)
		return nil
	})
}
