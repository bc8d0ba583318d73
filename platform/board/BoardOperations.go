package board

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/DedS3t/marble-backend/app/models"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog supplies the static reference data: city tiles and chance cards.
type Catalog interface {
	Tiles(ctx context.Context) ([]models.Tile, error)
	Cards(ctx context.Context) ([]models.Card, error)
}

// FileCatalog serves the catalog bundled with the binary.
type FileCatalog struct {
	tiles []models.Tile
	cards []models.Card
}

func LoadFileCatalog() (*FileCatalog, error) {
	var doc struct {
		Tiles []models.Tile `json:"tiles"`
		Cards []models.Card `json:"cards"`
	}
	if err := json.Unmarshal(catalogJSON, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &FileCatalog{tiles: doc.Tiles, cards: doc.Cards}, nil
}

func (c *FileCatalog) Tiles(context.Context) ([]models.Tile, error) {
	out := make([]models.Tile, len(c.tiles))
	copy(out, c.tiles)
	return out, nil
}

func (c *FileCatalog) Cards(context.Context) ([]models.Card, error) {
	out := make([]models.Card, len(c.cards))
	copy(out, c.cards)
	return out, nil
}

func GetByPos(state *models.GameState, pos int) (*models.Tile, error) {
	tile, ok := state.Tile(pos)
	if !ok {
		return nil, models.NotFound("tile %d not found", pos)
	}
	return tile, nil
}
