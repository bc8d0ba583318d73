package board

import (
	"fmt"
	"math/rand"

	"github.com/DedS3t/marble-backend/app/models"
)

var eventCells = buildEventCells()

func buildEventCells() map[int]models.Tile {
	cells := map[int]models.Tile{
		models.StartPosition:    {Name: "Start", Type: models.TileStart, Description: "Collect salary when passing or landing"},
		models.JailPosition:     {Name: "Jail", Type: models.TileJail, Description: "Stuck for 3 turns unless bail is paid"},
		models.AirplanePosition: {Name: "World Travel", Type: models.TileAirplane, Description: "Fly to any tile on your next action"},
		models.NTSPosition:      {Name: "National Tax Service", Type: models.TileNTS, Description: "Pay tax on your cash"},
	}
	for _, pos := range models.ChancePositions {
		cells[pos] = models.Tile{Name: "Chance", Type: models.TileChance, Description: "Draw a chance card"}
	}
	for _, l := range models.Landmarks {
		cells[l.Position] = models.Tile{Name: l.Name, Type: models.TileSpecial, LandPrice: l.Value, Description: "Landmark, cannot be built on"}
	}
	return cells
}

// NewBoard lays out a fresh 32 tile board. Event cells are fixed; the
// remaining positions are filled with cities picked at random from the catalog.
func NewBoard(catalog []models.Tile, rng *rand.Rand) ([]models.Tile, error) {
	var cities []models.Tile
	for _, t := range catalog {
		if t.Type == models.TileNormal {
			cities = append(cities, t)
		}
	}
	need := models.BoardSize - len(eventCells)
	if len(cities) < need {
		return nil, fmt.Errorf("catalog has %d cities, board needs %d", len(cities), need)
	}
	rng.Shuffle(len(cities), func(i, j int) { cities[i], cities[j] = cities[j], cities[i] })

	board := make([]models.Tile, models.BoardSize)
	next := 0
	for pos := range board {
		tile, ok := eventCells[pos]
		if !ok {
			tile = cities[next]
			next++
		}
		tile.Position = pos
		tile.OwnerID = ""
		tile.Building = models.Field
		tile.RecalculateToll()
		board[pos] = tile
	}
	return board, nil
}
