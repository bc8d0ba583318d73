package models

type TileType string

const (
	TileStart    TileType = "START"
	TileNormal   TileType = "NORMAL"
	TileChance   TileType = "CHANCE"
	TileSpecial  TileType = "SPECIAL"
	TileJail     TileType = "JAIL"
	TileAirplane TileType = "AIRPLANE"
	TileNTS      TileType = "NTS"
)

type BuildingType string

const (
	Field    BuildingType = "FIELD"
	Villa    BuildingType = "VILLA"
	Building BuildingType = "BUILDING"
	Hotel    BuildingType = "HOTEL"
)

// BuildingLadder lists building levels from lowest to highest.
var BuildingLadder = []BuildingType{Field, Villa, Building, Hotel}

// Level returns the position of b on the ladder, or -1 if b is not a level.
func (b BuildingType) Level() int {
	for i, l := range BuildingLadder {
		if l == b {
			return i
		}
	}
	return -1
}

// Tile is a catalog entry plus the per-game fields. Only the catalog columns
// live in postgres.
type Tile struct {
	tableName struct{} `pg:"tiles"`

	ID            int64    `json:"-" pg:"id,pk"`
	Name          string   `json:"name" pg:"name"`
	Type          TileType `json:"type" pg:"type"`
	LandPrice     int64    `json:"landPrice" pg:"land_price"`
	HousePrice    int64    `json:"housePrice" pg:"house_price"`
	BuildingPrice int64    `json:"buildingPrice" pg:"building_price"`
	HotelPrice    int64    `json:"hotelPrice" pg:"hotel_price"`
	Description   string   `json:"description" pg:"description"`

	Position int          `json:"cellNumber" pg:"-"`
	OwnerID  string       `json:"ownerId,omitempty" pg:"-"`
	Toll     int64        `json:"toll" pg:"-"`
	Building BuildingType `json:"buildingType" pg:"-"`
}

// Ownable reports whether the tile can be bought and held.
func (t *Tile) Ownable() bool {
	return t.Type == TileNormal || t.Type == TileSpecial
}

// LevelPrice is the cost of the single step that reaches level b.
func (t *Tile) LevelPrice(b BuildingType) int64 {
	switch b {
	case Villa:
		return t.HousePrice
	case Building:
		return t.BuildingPrice
	case Hotel:
		return t.HotelPrice
	default:
		return 0
	}
}

// RecalculateToll sets the toll to the land price plus every level built.
func (t *Tile) RecalculateToll() {
	toll := t.LandPrice
	lvl := t.Building.Level()
	if lvl < 0 {
		lvl = 0
	}
	for _, l := range BuildingLadder[1 : lvl+1] {
		toll += t.LevelPrice(l)
	}
	t.Toll = toll
}
