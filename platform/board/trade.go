package board

import (
	"github.com/DedS3t/marble-backend/app/models"
)

type Trade struct {
	LandIndex int
	Seller    string
	Buyer     string
	Price     int64
}

// TradePrice is what a tile sells for right now. City prices already carry
// every economic effect; landmarks are scaled by the effect in force.
func TradePrice(state *models.GameState, tile *models.Tile) int64 {
	if tile.Type != models.TileSpecial {
		return tile.LandPrice
	}
	m := state.Economy.PropertyPriceMultiplier
	if m <= 0 {
		m = 1
	}
	return int64(float64(tile.LandPrice) * m)
}

// SellLand moves an owned tile to buyer at its current trade price.
func SellLand(state *models.GameState, idx int, buyer *models.PlayerState) (Trade, error) {
	tile, err := GetByPos(state, idx)
	if err != nil {
		return Trade{}, err
	}
	if !tile.Ownable() {
		return Trade{}, models.InvalidAction("%s tile cannot be traded", tile.Type)
	}
	if tile.OwnerID == "" {
		return Trade{}, models.InvalidAction("tile %d has no owner", idx)
	}
	if tile.OwnerID == buyer.ID {
		return Trade{}, models.InvalidAction("tile %d already belongs to the buyer", idx)
	}
	seller, ok := state.Players[tile.OwnerID]
	if !ok {
		return Trade{}, models.NotFound("owner of tile %d not found", idx)
	}
	price := TradePrice(state, tile)
	if buyer.Money < price {
		return Trade{}, models.InsufficientFunds("need %d, have %d", price, buyer.Money)
	}

	buyer.Money -= price
	seller.Money += price
	seller.RemoveLand(idx)
	buyer.AddLand(idx)
	tile.OwnerID = buyer.ID
	return Trade{LandIndex: idx, Seller: seller.ID, Buyer: buyer.ID, Price: price}, nil
}
