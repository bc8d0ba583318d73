package queries

import (
	"context"
	"fmt"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/go-pg/pg/v10"
)

// PgCatalog reads the tile and card catalog from postgres.
type PgCatalog struct {
	db *pg.DB
}

func NewPgCatalog(db *pg.DB) *PgCatalog {
	return &PgCatalog{db: db}
}

func (c *PgCatalog) Tiles(ctx context.Context) ([]models.Tile, error) {
	var tiles []models.Tile
	err := c.db.ModelContext(ctx, &tiles).
		Where("type = ?", models.TileNormal).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, fmt.Errorf("select tiles: %w", err)
	}
	return tiles, nil
}

func (c *PgCatalog) Cards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := c.db.ModelContext(ctx, &cards).Order("id ASC").Select(); err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}
	return cards, nil
}
