package models

type GameStatus string

const (
	StatusWaiting  GameStatus = "WAITING"
	StatusPlaying  GameStatus = "PLAYING"
	StatusFinished GameStatus = "FINISHED"
)

// GameState is the single mutable aggregate of a room. It is stored as one
// JSON blob and only ever changed by the engine while it holds the room lock.
type GameState struct {
	RoomID             string                  `json:"roomId"`
	Status             GameStatus              `json:"gameState"`
	Board              []Tile                  `json:"board"`
	GameTurn           int                     `json:"gameTurn"`
	PlayerOrder        []string                `json:"playerOrder"`
	Players            map[string]*PlayerState `json:"players"`
	CurrentPlayerIndex int                     `json:"currentPlayerIndex"`
	Economy            EconomySnapshot         `json:"economy"`
}

// EconomySnapshot caches the economic effect currently applied to the room.
type EconomySnapshot struct {
	Period                  string  `json:"economicPeriodName"`
	EffectName              string  `json:"economicEffectName"`
	Description             string  `json:"economicDescription"`
	FullName                string  `json:"economicFullName"`
	Boom                    bool    `json:"isBoom"`
	SalaryMultiplier        float64 `json:"salaryMultiplier"`
	PropertyPriceMultiplier float64 `json:"propertyPriceMultiplier"`
	BuildingCostMultiplier  float64 `json:"buildingCostMultiplier"`
	TurnsRemaining          int     `json:"remainingTurns"`
}

func (g *GameState) CurrentPlayerID() string {
	if len(g.PlayerOrder) == 0 {
		return ""
	}
	return g.PlayerOrder[g.CurrentPlayerIndex]
}

func (g *GameState) CurrentPlayer() *PlayerState {
	return g.Players[g.CurrentPlayerID()]
}

// PlayerByName looks a player up by display name, which is what clients send.
func (g *GameState) PlayerByName(name string) *PlayerState {
	for _, id := range g.PlayerOrder {
		if p, ok := g.Players[id]; ok && p.Name == name {
			return p
		}
	}
	return nil
}

// OrderedPlayers returns players in turn order so scans are deterministic.
func (g *GameState) OrderedPlayers() []*PlayerState {
	out := make([]*PlayerState, 0, len(g.PlayerOrder))
	for _, id := range g.PlayerOrder {
		if p, ok := g.Players[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (g *GameState) ActivePlayers() []*PlayerState {
	var out []*PlayerState
	for _, p := range g.OrderedPlayers() {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

func (g *GameState) Tile(idx int) (*Tile, bool) {
	if idx < 0 || idx >= len(g.Board) {
		return nil, false
	}
	return &g.Board[idx], true
}

type GameCreateDto struct {
	RoomID  string      `json:"roomId"`
	Players []PlayerDto `json:"players"`
}
