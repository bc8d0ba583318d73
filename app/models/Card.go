package models

type CardType string

const (
	CardFinancialPolicy CardType = "FINANCIAL_POLICY"
	CardIssue           CardType = "ISSUE"
	CardGame            CardType = "GAME_CARD"
)

type EffectType string

const (
	EffectMoney           EffectType = "MONEY"
	EffectMoneyPercent    EffectType = "MONEY_PERCENT"
	EffectJail            EffectType = "JAIL"
	EffectMove            EffectType = "MOVE"
	EffectPosition        EffectType = "POSITION"
	EffectAllMoneyPercent EffectType = "ALL_MONEY_PERCENT"
	EffectLandValue       EffectType = "LAND_VALUE"
)

type Card struct {
	tableName struct{} `pg:"cards"`

	ID          int64      `json:"id" pg:"id,pk"`
	Type        CardType   `json:"cardType" pg:"card_type"`
	Name        string     `json:"name" pg:"name"`
	Description string     `json:"description" pg:"description"`
	Effect      EffectType `json:"effectType" pg:"effect_type"`
	Value       int        `json:"effectValue" pg:"effect_value"`
	Immediate   bool       `json:"isImmediate" pg:"is_immediate,use_zero"`
}

// RoomWide reports whether resolving the card touches every player.
func (c *Card) RoomWide() bool {
	return c.Effect == EffectAllMoneyPercent || c.Effect == EffectLandValue
}
