package models

import (
	uuid "github.com/satori/go.uuid"
)

// Outbound notification types, one per socket event.
const (
	TypeGameStart           = "game-start"
	TypeGameState           = "game-state"
	TypeTurnChanged         = "turn-changed"
	TypeDiceResult          = "dice-result"
	TypeCardDrawn           = "card-drawn"
	TypeLandTraded          = "land-traded"
	TypeBuildingConstructed = "building-constructed"
	TypeJailResult          = "jail-result"
	TypeTravelResult        = "travel-result"
	TypeTaxResult           = "tax-result"
	TypeEconomicUpdate      = "economic-update"
	TypeBankruptcy          = "bankruptcy"
	TypeGameEnd             = "game-end"
)

type Notification struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewNotification(typ string, payload interface{}) Notification {
	return Notification{ID: uuid.NewV4().String(), Type: typ, Payload: payload}
}

// Inbound actions. GameID is the room the socket joined.

type RollDiceRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"playerName"`
}

type TradeLandRequest struct {
	GameID    string `json:"game_id"`
	LandIndex int    `json:"landIndex"`
	BuyerName string `json:"buyerName"`
}

type ConstructRequest struct {
	GameID             string       `json:"game_id"`
	PlayerName         string       `json:"playerName"`
	LandIndex          int          `json:"landIndex"`
	TargetBuildingType BuildingType `json:"targetBuildingType"`
}

type JailRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"playerName"`
	Escape     bool   `json:"escape"`
}

type WorldTravelRequest struct {
	GameID           string `json:"game_id"`
	PlayerName       string `json:"playerName"`
	DestinationIndex int    `json:"destinationIndex"`
}

type TaxRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"playerName"`
}

type UseCardRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"playerName"`
	CardName   string `json:"cardName"`
}

type SkipTurnRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"playerName"`
}

// Payloads.

type Asset struct {
	Money int64 `json:"money"`
	Lands []int `json:"lands"`
}

type TurnChanged struct {
	Turn          int    `json:"turn"`
	CurrentPlayer string `json:"currentPlayer"`
}

type DiceResult struct {
	Roller      string `json:"roller"`
	Dice1       int    `json:"dice1"`
	Dice2       int    `json:"dice2"`
	Double      bool   `json:"double"`
	NewPosition int    `json:"newPosition"`
	SalaryBonus int64  `json:"salaryBonus"`
	Toll        int64  `json:"toll,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Purchasable bool   `json:"purchasable"`
	Price       int64  `json:"price,omitempty"`
	Jailed      bool   `json:"jailed"`
	Asset       Asset  `json:"asset"`
}

type CardDrawn struct {
	Drawer      string           `json:"drawer"`
	CardName    string           `json:"cardName"`
	Description string           `json:"description"`
	Effect      EffectType       `json:"effect"`
	MoneyChange int64            `json:"moneyChange"`
	NewPosition int              `json:"newPosition"`
	SalaryBonus int64            `json:"salaryBonus"`
	Toll        int64            `json:"toll,omitempty"`
	Jailed      bool             `json:"jailed"`
	Changes     map[string]int64 `json:"changes,omitempty"`
	Asset       Asset            `json:"asset"`
}

type LandTraded struct {
	Buyer     string `json:"buyer"`
	Seller    string `json:"seller"`
	LandIndex int    `json:"landIndex"`
	Price     int64  `json:"price"`
}

type BuildingConstructed struct {
	Player    string       `json:"player"`
	LandIndex int          `json:"landIndex"`
	Level     BuildingType `json:"newLevel"`
	Cost      int64        `json:"cost"`
	LandCost  int64        `json:"landCost"`
	Toll      int64        `json:"toll"`
	Asset     Asset        `json:"asset"`
}

type JailResult struct {
	Player         string `json:"player"`
	Escaped        bool   `json:"escaped"`
	RemainingTurns int    `json:"remainingTurns"`
	Asset          Asset  `json:"asset"`
}

type TravelResult struct {
	Traveler    string `json:"traveler"`
	From        int    `json:"from"`
	To          int    `json:"to"`
	SalaryBonus int64  `json:"salaryBonus"`
	Toll        int64  `json:"toll,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Jailed      bool   `json:"jailed"`
	Asset       Asset  `json:"asset"`
}

type TaxResult struct {
	Player string `json:"player"`
	Amount int64  `json:"amount"`
	Asset  Asset  `json:"asset"`
}

type EconomicUpdate struct {
	Period                  string  `json:"period"`
	Effect                  string  `json:"effect"`
	Description             string  `json:"description"`
	Boom                    bool    `json:"isBoom"`
	SalaryMultiplier        float64 `json:"salaryMultiplier"`
	PropertyPriceMultiplier float64 `json:"propertyPriceMultiplier"`
	BuildingCostMultiplier  float64 `json:"buildingCostMultiplier"`
	TurnsRemaining          int     `json:"turnsRemaining"`
	Board                   []Tile  `json:"board"`
}

type Bankruptcy struct {
	Player        string `json:"player"`
	ReleasedLands []int  `json:"releasedLands"`
}

type GameEnd struct {
	Winner string `json:"winner"`
	Reason string `json:"reason"`
}
