package models

const (
	BoardSize = 32

	StartPosition    = 0
	JailPosition     = 8
	AirplanePosition = 16
	NTSPosition      = 24

	JailTurns = 3

	StartingMoney int64 = 20000000
	BaseSalary    int64 = 1000000
	JailBail      int64 = 500000
	TaxPercent    int64 = 15

	// LandValueBase is the per-tile value used by tax-audit style cards.
	LandValueBase int64 = 1000000

	// TurnLimit is the last turn played before the richest player wins.
	TurnLimit = 20
)

// ChancePositions are the tiles that trigger a card draw.
var ChancePositions = []int{3, 11, 19, 27}

// Landmark is a SPECIAL tile. Value is both its price and its asset value.
type Landmark struct {
	Position int
	Name     string
	Value    int64
}

// Landmarks are the five tiles whose joint ownership wins the game.
var Landmarks = []Landmark{
	{5, "Gwangju", 2000000},
	{13, "Daejeon", 3000000},
	{21, "Gumi", 4000000},
	{28, "Busan", 5000000},
	{31, "Seoul", 6000000},
}

var SpecialPositions = func() []int {
	out := make([]int, len(Landmarks))
	for i, l := range Landmarks {
		out[i] = l.Position
	}
	return out
}()

// BaseTileValue is the fixed asset value of a tile for the turn-limit ranking.
func BaseTileValue(idx int) int64 {
	for _, l := range Landmarks {
		if l.Position == idx {
			return l.Value
		}
	}
	switch {
	case idx <= 10:
		return 250000
	case idx <= 20:
		return 500000
	case idx <= 30:
		return 750000
	default:
		return 1000000
	}
}
