package economy

import (
	"math/rand"

	"github.com/DedS3t/marble-backend/app/models"
)

type Period string

const (
	Modern       Period = "MODERN"
	Contemporary Period = "CONTEMPORARY"
	Recent       Period = "RECENT"
	Future       Period = "FUTURE"
)

// Periods cycle in this order, one step every two turns.
var Periods = []Period{Modern, Contemporary, Recent, Future}

// TurnsPerPeriod is how many turns one economic effect stays in force.
const TurnsPerPeriod = 2

type Effect struct {
	Period                  Period
	Boom                    bool
	Name                    string
	Description             string
	SalaryMultiplier        float64
	PropertyPriceMultiplier float64
	BuildingCostMultiplier  float64
}

func (e Effect) FullName() string {
	if e.Boom {
		return e.Name + " - Boom"
	}
	return e.Name + " - Recession"
}

var templates = []Effect{
	{Modern, true, "Industrial Revolution", "Factories boom and land prices climb.", 1.06, 1.04, 1.03},
	{Modern, false, "Great Depression", "Wages fall as the markets crash.", 0.97, 1.01, 0.99},
	{Contemporary, true, "Post-war Boom", "Rebuilding drives wages and property up.", 1.08, 1.06, 1.04},
	{Contemporary, false, "Oil Shock", "Energy prices squeeze wages and construction.", 0.94, 1.02, 0.97},
	{Recent, true, "Dot-com Bubble", "Tech money pours into the property market.", 1.10, 1.08, 1.05},
	{Recent, false, "Financial Crisis", "Credit dries up and wages are cut.", 0.92, 1.03, 0.95},
	{Future, true, "AI Revolution", "Automation lifts productivity everywhere.", 1.12, 1.10, 1.06},
	{Future, false, "Climate Crisis", "Disasters push wages and building costs down.", 0.90, 1.04, 0.93},
}

func cycle(turn int) int {
	return turn / TurnsPerPeriod
}

func PeriodFor(turn int) Period {
	return Periods[cycle(turn)%len(Periods)]
}

// IsBoom is reproducible: every turn in the same cycle gets the same answer.
func IsBoom(turn int) bool {
	return rand.New(rand.NewSource(int64(cycle(turn)))).Intn(2) == 1
}

// Current picks the effect in force on turn. The template choice draws from the
// same seeded source as the boom flag, so it is reproducible too.
func Current(turn int) Effect {
	rng := rand.New(rand.NewSource(int64(cycle(turn))))
	boom := rng.Intn(2) == 1
	period := PeriodFor(turn)

	var matching []Effect
	for _, t := range templates {
		if t.Period == period && t.Boom == boom {
			matching = append(matching, t)
		}
	}
	return matching[rng.Intn(len(matching))]
}

func TurnsRemaining(turn int) int {
	return TurnsPerPeriod - turn%TurnsPerPeriod
}

func scale(v int64, m float64) int64 {
	return int64(float64(v) * m)
}

// Apply multiplies the current prices of every city in place and caches the
// effect on the state. Repeated applications compound.
func Apply(state *models.GameState, e Effect) {
	for i := range state.Board {
		tile := &state.Board[i]
		if tile.Type != models.TileNormal {
			continue
		}
		tile.LandPrice = scale(tile.LandPrice, e.PropertyPriceMultiplier)
		tile.HousePrice = scale(tile.HousePrice, e.BuildingCostMultiplier)
		tile.BuildingPrice = scale(tile.BuildingPrice, e.BuildingCostMultiplier)
		tile.HotelPrice = scale(tile.HotelPrice, e.BuildingCostMultiplier)
		tile.RecalculateToll()
	}
	Cache(state, e)
}

// Cache records e as the room's current effect without touching prices.
func Cache(state *models.GameState, e Effect) {
	state.Economy = models.EconomySnapshot{
		Period:                  string(e.Period),
		EffectName:              e.Name,
		Description:             e.Description,
		FullName:                e.FullName(),
		Boom:                    e.Boom,
		SalaryMultiplier:        e.SalaryMultiplier,
		PropertyPriceMultiplier: e.PropertyPriceMultiplier,
		BuildingCostMultiplier:  e.BuildingCostMultiplier,
		TurnsRemaining:          TurnsRemaining(state.GameTurn),
	}
}

func Update(state *models.GameState) models.EconomicUpdate {
	return models.EconomicUpdate{
		Period:                  state.Economy.Period,
		Effect:                  state.Economy.EffectName,
		Description:             state.Economy.Description,
		Boom:                    state.Economy.Boom,
		SalaryMultiplier:        state.Economy.SalaryMultiplier,
		PropertyPriceMultiplier: state.Economy.PropertyPriceMultiplier,
		BuildingCostMultiplier:  state.Economy.BuildingCostMultiplier,
		TurnsRemaining:          state.Economy.TurnsRemaining,
		Board:                   state.Board,
	}
}
