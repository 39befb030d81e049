package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerdemo/pkg/deck"
	"pokerdemo/pkg/handeval"
)

type resultJSON struct {
	Rank        handeval.HandRank `json:"rank"`
	Value       handeval.Value    `json:"value"`
	Cards       []*deck.Card      `json:"cards"`
	Description string            `json:"description"`
}

type summaryJSON struct {
	PlayerIndex int         `json:"playerIndex"`
	PlayerName  string      `json:"playerName"`
	Evaluation  *resultJSON `json:"evaluation"`
}

func TestMux_postEvaluate(t *testing.T) {
	ts := httptest.NewServer(NewMux("", testSessionOptions()))
	defer ts.Close()

	var resp struct {
		Evaluation *resultJSON `json:"evaluation"`
	}

	assertPost(t, ts, "/evaluate", postEvaluatePayload{
		Hole:      []string{"14s", "13s"},
		Community: []string{"12s", "11s", "10s", "2h", "3d"},
	}, &resp, 200)
	require.NotNil(t, resp.Evaluation)
	assert.Equal(t, handeval.RoyalFlush, resp.Evaluation.Rank)
	assert.Equal(t, "Royal Flush", resp.Evaluation.Description)
	assert.Equal(t, "14", resp.Evaluation.Value.String())
	assert.Equal(t, "14s,13s,12s,11s,10s", deck.CardsToString(resp.Evaluation.Cards))

	// face-down cards are ignored
	resp.Evaluation = nil
	assertPost(t, ts, "/evaluate", postEvaluatePayload{
		Hole:      []string{"9c", "9d"},
		Community: []string{"13h", "7s", "4c", "x", "x"},
	}, &resp, 200)
	require.NotNil(t, resp.Evaluation)
	assert.Equal(t, handeval.Pair, resp.Evaluation.Rank)
	assert.Equal(t, "(9, (13, 7, 4))", resp.Evaluation.Value.String())

	// not enough cards
	resp.Evaluation = &resultJSON{}
	assertPost(t, ts, "/evaluate", postEvaluatePayload{
		Hole:      []string{"14s", "13s"},
		Community: []string{"x", "x", "x", "x", "x"},
	}, &resp, 200)
	assert.Nil(t, resp.Evaluation)

	var errObj errorResponse
	assertPost(t, ts, "/evaluate", postEvaluatePayload{
		Hole: []string{"15s", "13s"},
	}, &errObj, 400)
	assert.Equal(t, `hole: invalid card: "15s"`, errObj.Message)

	assertPost(t, ts, "/evaluate", postEvaluatePayload{
		Hole:      []string{"14s", "13s"},
		Community: []string{"1z"},
	}, &errObj, 400)
	assert.Equal(t, `community: invalid card: "1z"`, errObj.Message)

	assertPost(t, ts, "/evaluate", `{"hole":`, &errObj, 400)
}

func TestMux_postShowdown(t *testing.T) {
	ts := httptest.NewServer(NewMux("", testSessionOptions()))
	defer ts.Close()

	var resp struct {
		Players []summaryJSON `json:"players"`
		Winners []int         `json:"winners"`
	}

	assertPost(t, ts, "/showdown", postShowdownPayload{
		Community: []string{"10h", "10d", "4h", "8h", "12s"},
		Players: []showdownPlayer{
			{Name: "Alice", Hole: []string{"10c", "4c"}},
			{Name: "Bob", Hole: []string{"2h", "6h"}},
			{Name: "Carol", Hole: []string{"12h", "12d"}},
		},
	}, &resp, 200)

	require.Len(t, resp.Players, 3)
	assert.Equal(t, []int{2}, resp.Winners)
	assert.Equal(t, "Alice", resp.Players[0].PlayerName)
	assert.Equal(t, handeval.FullHouse, resp.Players[0].Evaluation.Rank)
	assert.Equal(t, handeval.Flush, resp.Players[1].Evaluation.Rank)
	assert.Equal(t, handeval.FullHouse, resp.Players[2].Evaluation.Rank)
	assert.Equal(t, "Full House, Queens over 10s", resp.Players[2].Evaluation.Description)

	// before the flop every player ties
	resp.Players, resp.Winners = nil, nil
	assertPost(t, ts, "/showdown", postShowdownPayload{
		Players: []showdownPlayer{
			{Hole: []string{"14c", "14d"}},
			{Name: "Bob", Hole: []string{"2c", "7d"}},
		},
	}, &resp, 200)
	require.Len(t, resp.Players, 2)
	assert.NotEmpty(t, resp.Players[0].PlayerName)
	assert.Nil(t, resp.Players[0].Evaluation)
	assert.Equal(t, []int{0, 1}, resp.Winners)

	var errObj errorResponse
	assertPost(t, ts, "/showdown", postShowdownPayload{}, &errObj, 400)
	assert.Equal(t, "at least one player is required", errObj.Message)

	assertPost(t, ts, "/showdown", postShowdownPayload{
		Community: []string{"2c", "3c", "4c", "5c", "6c", "7c"},
		Players:   []showdownPlayer{{Name: "A"}},
	}, &errObj, 400)
	assert.Equal(t, "at most 5 community cards", errObj.Message)

	assertPost(t, ts, "/showdown", postShowdownPayload{
		Players: []showdownPlayer{{Name: "A", Hole: []string{"2c"}}, {Name: "B", Hole: []string{"zz"}}},
	}, &errObj, 400)
	assert.Equal(t, `player 1: invalid card: "zz"`, errObj.Message)
}
