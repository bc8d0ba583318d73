package models

type PlayerState struct {
	ID        string `json:"userId"`
	Name      string `json:"nickname"`
	Position  int    `json:"position"`
	Money     int64  `json:"money"`
	Lands     []int  `json:"ownedProperties"`
	InJail    bool   `json:"isInJail"`
	JailTurns int    `json:"jailTurns"`
	Active    bool   `json:"isActive"`
	HasRolled bool   `json:"hasRolled"`
}

// PlayerDto is a player as handed over by the lobby when a game starts.
type PlayerDto struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (p *PlayerState) Owns(idx int) bool {
	for _, l := range p.Lands {
		if l == idx {
			return true
		}
	}
	return false
}

func (p *PlayerState) AddLand(idx int) {
	if !p.Owns(idx) {
		p.Lands = append(p.Lands, idx)
	}
}

func (p *PlayerState) RemoveLand(idx int) {
	for i, l := range p.Lands {
		if l == idx {
			p.Lands = append(p.Lands[:i], p.Lands[i+1:]...)
			return
		}
	}
}

func (p *PlayerState) Asset() Asset {
	lands := make([]int, len(p.Lands))
	copy(lands, p.Lands)
	return Asset{Money: p.Money, Lands: lands}
}
