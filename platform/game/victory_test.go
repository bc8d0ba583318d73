package game

import (
	"testing"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainState(names ...string) *models.GameState {
	st := &models.GameState{
		RoomID:   room,
		Status:   models.StatusPlaying,
		Board:    make([]models.Tile, models.BoardSize),
		GameTurn: 1,
		Players:  map[string]*models.PlayerState{},
		Economy:  models.EconomySnapshot{SalaryMultiplier: 1},
	}
	for i := range st.Board {
		st.Board[i] = models.Tile{Position: i, Type: models.TileNormal, LandPrice: 100, Building: models.Field}
	}
	for _, n := range names {
		st.PlayerOrder = append(st.PlayerOrder, n)
		st.Players[n] = &models.PlayerState{ID: n, Name: n, Money: models.StartingMoney, Lands: []int{}, Active: true}
	}
	return st
}

func TestCheckVictory(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(st *models.GameState)
		winner string
		reason string
	}{
		{
			name:  "nobody yet",
			setup: func(st *models.GameState) {},
		},
		{
			name: "monopoly with everyone still playing",
			setup: func(st *models.GameState) {
				st.Players["b"].Lands = append([]int{}, models.SpecialPositions...)
			},
			winner: "b",
			reason: ReasonMonopoly,
		},
		{
			name: "monopoly beats last survivor",
			setup: func(st *models.GameState) {
				st.Players["b"].Lands = append([]int{}, models.SpecialPositions...)
				st.Players["a"].Active = false
				st.Players["c"].Active = false
			},
			winner: "b",
			reason: ReasonMonopoly,
		},
		{
			name: "four specials is not a monopoly",
			setup: func(st *models.GameState) {
				st.Players["a"].Lands = []int{5, 13, 21, 28}
			},
		},
		{
			name: "bankrupt player cannot win by monopoly",
			setup: func(st *models.GameState) {
				st.Players["a"].Lands = append([]int{}, models.SpecialPositions...)
				st.Players["a"].Active = false
			},
		},
		{
			name: "last survivor",
			setup: func(st *models.GameState) {
				st.Players["a"].Active = false
				st.Players["b"].Active = false
			},
			winner: "c",
			reason: ReasonLastSurvivor,
		},
		{
			name: "turn limit richest player",
			setup: func(st *models.GameState) {
				st.GameTurn = models.TurnLimit + 1
				st.Players["c"].Money++
			},
			winner: "c",
			reason: ReasonTurnLimit,
		},
		{
			name: "turn limit tie goes to earlier player",
			setup: func(st *models.GameState) {
				st.GameTurn = models.TurnLimit + 1
			},
			winner: "a",
			reason: ReasonTurnLimit,
		},
		{
			name: "turn limit not reached on the last turn",
			setup: func(st *models.GameState) {
				st.GameTurn = models.TurnLimit
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := plainState("a", "b", "c")
			tt.setup(st)

			v, ok := CheckVictory(st)
			if tt.winner == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.winner, v.Winner.ID)
			assert.Equal(t, tt.reason, v.Reason)
		})
	}
}

func TestTurnLimitCountsLandValue(t *testing.T) {
	st := plainState("a", "b")
	st.GameTurn = models.TurnLimit + 1
	st.Players["a"].Money = 5000
	st.Players["a"].Lands = []int{5}
	st.Players["b"].Money = 4000
	st.Players["b"].Lands = []int{1, 2}

	assert.Equal(t, int64(5000)+models.BaseTileValue(5), TotalAssets(st.Players["a"]))
	assert.Equal(t, int64(4000)+models.BaseTileValue(1)+models.BaseTileValue(2), TotalAssets(st.Players["b"]))

	v, ok := CheckVictory(st)
	require.True(t, ok)
	assert.Equal(t, "a", v.Winner.ID)
}

func TestSettleBankruptcies(t *testing.T) {
	st := plainState("a", "b", "c")
	st.Players["a"].Money = -1
	st.Players["c"].Money = -500
	st.Board[4].OwnerID = "c"
	st.Board[4].Building = models.Hotel
	st.Board[4].Toll = 999
	st.Players["c"].Lands = []int{4}

	out := settleBankruptcies(st)

	require.Len(t, out, 2)
	assert.Equal(t, models.Bankruptcy{Player: "a", ReleasedLands: []int{}}, out[0])
	assert.Equal(t, models.Bankruptcy{Player: "c", ReleasedLands: []int{4}}, out[1])
	assert.False(t, st.Players["a"].Active)
	assert.True(t, st.Players["b"].Active)
	assert.Equal(t, int64(-500), st.Players["c"].Money)
	assert.Empty(t, st.Board[4].OwnerID)
	assert.Equal(t, models.Field, st.Board[4].Building)
	assert.Equal(t, int64(100), st.Board[4].Toll)

	assert.Empty(t, settleBankruptcies(st), "already bankrupt players are not settled twice")
}

func TestAdvanceTurn(t *testing.T) {
	e := &Engine{}

	t.Run("skips inactive players", func(t *testing.T) {
		st := plainState("a", "b", "c")
		st.Players["b"].Active = false
		var m mutation
		e.advanceTurn(st, &m)

		assert.Equal(t, "c", st.CurrentPlayerID())
		assert.Equal(t, 1, st.GameTurn)
		assert.True(t, m.advanced)
		assert.Equal(t, models.TurnChanged{Turn: 1, CurrentPlayer: "c"}, m.notes[0].Payload)
	})

	t.Run("wrapping starts a new turn and rolls the economy", func(t *testing.T) {
		st := plainState("a", "b")
		st.CurrentPlayerIndex = 1
		st.Players["b"].HasRolled = true
		var m mutation
		e.advanceTurn(st, &m)

		assert.Equal(t, "a", st.CurrentPlayerID())
		assert.Equal(t, 2, st.GameTurn)
		assert.False(t, st.Players["b"].HasRolled)
		require.Len(t, m.notes, 2)
		assert.Equal(t, models.TypeEconomicUpdate, m.notes[0].Type)
		assert.Equal(t, models.TypeTurnChanged, m.notes[1].Type)
		assert.Equal(t, "CONTEMPORARY", st.Economy.Period)
		assert.NotEqual(t, int64(100), st.Board[1].LandPrice)
	})

	t.Run("odd turns only count down the economy", func(t *testing.T) {
		st := plainState("a", "b")
		st.GameTurn = 2
		st.Economy.TurnsRemaining = 2
		st.CurrentPlayerIndex = 1
		var m mutation
		e.advanceTurn(st, &m)

		assert.Equal(t, 3, st.GameTurn)
		assert.Equal(t, 1, st.Economy.TurnsRemaining)
		require.Len(t, m.notes, 1)
		assert.Equal(t, int64(100), st.Board[1].LandPrice)
	})

	t.Run("serves a jail turn", func(t *testing.T) {
		st := plainState("a", "b", "c")
		st.Players["b"].InJail = true
		st.Players["b"].JailTurns = 2
		st.Players["c"].InJail = true
		st.Players["c"].JailTurns = 1

		var m mutation
		e.advanceTurn(st, &m)
		assert.True(t, st.Players["b"].InJail)
		assert.Equal(t, 1, st.Players["b"].JailTurns)

		e.advanceTurn(st, &m)
		assert.False(t, st.Players["c"].InJail)
		assert.Zero(t, st.Players["c"].JailTurns)
	})
}
