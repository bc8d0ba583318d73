package cards

import (
	"context"
	"strings"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/DedS3t/marble-backend/platform/board"
	log "github.com/sirupsen/logrus"
)

// RateCutKeyword marks the only financial policy that raises balances.
const RateCutKeyword = "Rate Cut"

// Resolution is the outcome of one card for the player who drew it.
type Resolution struct {
	Card        models.Card
	MoneyChange int64
	Landing     *board.Landing
	Jailed      bool
	// Changes holds per-player balance changes for room-wide cards.
	Changes map[string]int64
}

func (r Resolution) RoomWide() bool {
	return r.Changes != nil
}

// Draw picks a card and resolves it against the caller's already loaded state.
func (d *Deck) Draw(ctx context.Context, state *models.GameState, p *models.PlayerState) (Resolution, error) {
	card, err := d.Pick(ctx)
	if err != nil {
		return Resolution{}, err
	}
	return Apply(state, p, card), nil
}

// Use resolves a named card. Only immediate cards can be used.
func (d *Deck) Use(ctx context.Context, state *models.GameState, p *models.PlayerState, name string) (Resolution, error) {
	card, err := d.Find(ctx, name)
	if err != nil {
		return Resolution{}, err
	}
	if !card.Immediate {
		return Resolution{}, models.InvalidAction("card %q cannot be used directly", name)
	}
	return Apply(state, p, card), nil
}

func floorZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// Apply dispatches card on its effect type. Moves caused by a card resolve
// the landing but never draw another card.
func Apply(state *models.GameState, p *models.PlayerState, card models.Card) Resolution {
	res := Resolution{Card: card}
	if card.RoomWide() {
		res.Changes = make(map[string]int64)
	}
	before := p.Money
	v := int64(card.Value)

	switch card.Effect {
	case models.EffectMoney:
		p.Money = floorZero(p.Money + v)
	case models.EffectMoneyPercent:
		p.Money = floorZero(p.Money - p.Money*v/100)
	case models.EffectJail:
		board.SendToJail(p)
		res.Jailed = true
	case models.EffectMove:
		l := board.Move(state, p, card.Value)
		res.Landing = &l
		res.Jailed = l.Jailed
	case models.EffectPosition:
		l, err := board.MoveAbsolute(state, p, card.Value)
		if err != nil {
			log.WithFields(log.Fields{"room": state.RoomID, "card": card.Name}).WithError(err).Warn("card position off the board")
			break
		}
		res.Landing = &l
		res.Jailed = l.Jailed
	case models.EffectAllMoneyPercent:
		increase := strings.Contains(card.Name, RateCutKeyword)
		for _, other := range state.ActivePlayers() {
			change := other.Money * v / 100
			if !increase {
				change = -change
			}
			old := other.Money
			other.Money = floorZero(other.Money + change)
			res.Changes[other.ID] = other.Money - old
		}
	case models.EffectLandValue:
		for _, other := range state.ActivePlayers() {
			if len(other.Lands) == 0 {
				continue
			}
			loss := int64(len(other.Lands)) * models.LandValueBase * v / 100
			old := other.Money
			other.Money = floorZero(other.Money - loss)
			res.Changes[other.ID] = other.Money - old
		}
	default:
		log.WithFields(log.Fields{
			"room":   state.RoomID,
			"card":   card.Name,
			"effect": card.Effect,
		}).Warn("unsupported card effect")
	}

	res.MoneyChange = p.Money - before
	return res
}
