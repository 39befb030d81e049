package table

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerdemo/pkg/deck"
	"pokerdemo/pkg/handeval"
)

func boardFromString(t *testing.T, s string) *Board {
	t.Helper()

	b := NewBoard()
	for i, c := range deck.CardsFromString(s) {
		require.NoError(t, b.SetCard(i, c))
	}

	return b
}

func playersWithHoles(holes ...string) Players {
	players := make(Players, len(holes))
	for i, hole := range holes {
		players[i] = &Player{
			Index: i,
			Name:  "player" + strconv.Itoa(i),
			Hole:  deck.CardsFromString(hole),
		}
	}

	return players
}

func indexes(summaries []*PlayerHandSummary) string {
	s := make([]string, len(summaries))
	for i, summary := range summaries {
		s[i] = strconv.Itoa(summary.PlayerIndex)
	}

	return strings.Join(s, "-")
}

func tiersToString(tiers [][]*PlayerHandSummary) string {
	s := make([]string, len(tiers))
	for i, tier := range tiers {
		s[i] = indexes(tier)
	}

	return strings.Join(s, "|")
}

func TestEvaluatePlayer(t *testing.T) {
	a := assert.New(t)

	players := playersWithHoles("14s,13s")
	board := boardFromString(t, "12s,11s,10s,2h,3d")

	summary := EvaluatePlayer(players[0], board)
	a.Equal(0, summary.PlayerIndex)
	a.Equal("player0", summary.PlayerName)
	require.NotNil(t, summary.Result)
	a.Equal(handeval.RoyalFlush, summary.Result.Rank)

	// pre-flop, the board is face down
	summary = EvaluatePlayer(players[0], NewBoard())
	a.Nil(summary.Result)

	summary = EvaluatePlayer(players[0], nil)
	a.Nil(summary.Result)
}

func TestFindWinners(t *testing.T) {
	board := boardFromString(t, "7s,7d,2c,9h,13d")

	tests := []struct {
		name    string
		holes   []string
		winners string
		tiers   string
	}{
		{
			name:    "full houses beat a pair",
			holes:   []string{"7h,9c", "4d,5d", "7c,13c"},
			winners: "2",
			tiers:   "2|0|1",
		},
		{
			name:    "split pot",
			holes:   []string{"14c,3h", "14h,3s", "4c,5c"},
			winners: "0-1",
			tiers:   "0-1|2",
		},
		{
			name:    "same two pair",
			holes:   []string{"2h,3c", "2s,3d"},
			winners: "0-1",
			tiers:   "0-1",
		},
		{
			name:    "single player",
			holes:   []string{"2h,3c"},
			winners: "0",
			tiers:   "0",
		},
		{
			name:    "two pair",
			holes:   []string{"9c,12h", "9d,14s", "13h,4s"},
			winners: "2",
			tiers:   "2|1|0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := HandSummaries(playersWithHoles(tt.holes...), board)
			winners := FindWinners(summaries)

			assert.Equal(t, tt.winners, indexes(winners))
			assert.Equal(t, tt.tiers, tiersToString(RankTiers(summaries)))
			assert.Equal(t, indexes(winners), indexes(RankTiers(summaries)[0]))
			assert.Len(t, WinnerIndexes(summaries), len(winners))
		})
	}
}

func TestFindWinners_threePlayers(t *testing.T) {
	a := assert.New(t)

	// player 0: full house, player 1: flush, player 2: a better full house
	board := boardFromString(t, "10h,10d,4h,8h,12s")
	summaries := HandSummaries(playersWithHoles("10c,4c", "2h,6h", "12h,12d"), board)

	a.Equal(handeval.FullHouse, summaries[0].Result.Rank)
	a.Equal(handeval.Flush, summaries[1].Result.Rank)
	a.Equal(handeval.FullHouse, summaries[2].Result.Rank)

	a.Equal([]int{2}, WinnerIndexes(summaries))
	a.Equal("2|0|1", tiersToString(RankTiers(summaries)))
}

func TestFindWinners_splitFullHouse(t *testing.T) {
	a := assert.New(t)

	// players 0 and 2 make the same full house, player 1 a flush
	board := boardFromString(t, "10h,10d,4h,8h,12s")
	summaries := HandSummaries(playersWithHoles("10c,4c", "2h,6h", "10s,4s"), board)

	a.Equal(handeval.FullHouse, summaries[0].Result.Rank)
	a.Equal(handeval.Flush, summaries[1].Result.Rank)
	a.Equal(handeval.FullHouse, summaries[2].Result.Rank)
	a.Equal(0, handeval.CompareHands(summaries[0].Result, summaries[2].Result))

	a.Equal([]int{0, 2}, WinnerIndexes(summaries))
	a.Equal("0-2", indexes(FindWinners(summaries)))
	a.Equal("0-2|1", tiersToString(RankTiers(summaries)))
}

func TestFindWinners_noHands(t *testing.T) {
	a := assert.New(t)

	a.Len(FindWinners(nil), 0)
	a.Len(RankTiers(nil), 0)

	// before the flop nobody has five cards, so everybody ties
	summaries := HandSummaries(playersWithHoles("14s,14c", "2h,7d"), NewBoard())
	a.Equal("0-1", indexes(FindWinners(summaries)))
	a.Equal("0-1", tiersToString(RankTiers(summaries)))

	// a player with a hand beats players without one
	summaries = []*PlayerHandSummary{
		{PlayerIndex: 0},
		{PlayerIndex: 1, Result: handeval.EvaluateHand(handeval.CardsOf(deck.CardsFromString("2c,3d,4h,5s,7c")), nil)},
		{PlayerIndex: 2},
	}
	a.Equal("1", indexes(FindWinners(summaries)))
	a.Equal("1|0-2", tiersToString(RankTiers(summaries)))
}

func TestHandSummaries_seatOrder(t *testing.T) {
	board := boardFromString(t, "7s,7d,2c,9h,13d")
	players := playersWithHoles("2h,3c", "14h,14s", "9c,9d")

	summaries := HandSummaries(players, board)
	assert.Equal(t, "0-1-2", indexes(summaries))
	assert.Equal(t, "2|1|0", tiersToString(RankTiers(summaries)))
}
