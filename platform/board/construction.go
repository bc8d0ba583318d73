package board

import (
	"github.com/DedS3t/marble-backend/app/models"
)

type Construction struct {
	LandIndex int
	From      models.BuildingType
	To        models.BuildingType
	LandCost  int64
	BuildCost int64
}

func (c Construction) Total() int64 {
	return c.LandCost + c.BuildCost
}

// ConstructionCost sums every level between the tile's current level and
// target, excluding the current one.
func ConstructionCost(tile *models.Tile, target models.BuildingType) (int64, error) {
	to := target.Level()
	if to < 0 {
		return 0, models.InvalidAction("unknown building type %q", target)
	}
	from := tile.Building.Level()
	if from < 0 {
		from = 0
	}
	var cost int64
	for lvl := from + 1; lvl <= to; lvl++ {
		cost += tile.LevelPrice(models.BuildingLadder[lvl])
	}
	return cost, nil
}

// Construct builds up to target on the tile p is standing on, buying the land
// first when nobody owns it. Nothing changes unless p can pay the full total.
func Construct(state *models.GameState, p *models.PlayerState, idx int, target models.BuildingType) (Construction, error) {
	tile, err := GetByPos(state, idx)
	if err != nil {
		return Construction{}, err
	}
	if !tile.Ownable() {
		return Construction{}, models.InvalidAction("cannot build on %s tile", tile.Type)
	}
	if target.Level() < 0 {
		return Construction{}, models.InvalidAction("unknown building type %q", target)
	}
	if p.Position != idx {
		return Construction{}, models.InvalidAction("player is not on tile %d", idx)
	}
	if tile.OwnerID != "" && tile.OwnerID != p.ID {
		return Construction{}, models.InvalidAction("tile %d is owned by another player", idx)
	}
	if tile.Type == models.TileSpecial && target != models.Field {
		return Construction{}, models.InvalidAction("landmarks cannot be built on")
	}

	c := Construction{LandIndex: idx, From: tile.Building, To: target}
	if tile.OwnerID == "" {
		c.LandCost = tile.LandPrice
	} else if target.Level() <= tile.Building.Level() {
		return Construction{}, models.InvalidAction("tile %d is already at %s", idx, tile.Building)
	}

	c.BuildCost, err = ConstructionCost(tile, target)
	if err != nil {
		return Construction{}, err
	}
	if p.Money < c.Total() {
		return Construction{}, models.InsufficientFunds("need %d, have %d", c.Total(), p.Money)
	}

	p.Money -= c.Total()
	tile.OwnerID = p.ID
	tile.Building = target
	tile.RecalculateToll()
	p.AddLand(idx)
	return c, nil
}

// Release returns every tile p owns to the bank with its buildings removed.
func Release(state *models.GameState, p *models.PlayerState) []int {
	released := p.Lands
	for _, idx := range released {
		tile, ok := state.Tile(idx)
		if !ok {
			continue
		}
		tile.OwnerID = ""
		tile.Building = models.Field
		tile.RecalculateToll()
	}
	p.Lands = nil
	return released
}
