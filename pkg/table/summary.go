package table

import (
	"sort"

	"pokerdemo/pkg/handeval"
)

// PlayerHandSummary is a player's best hand
// A nil Result means the player does not have five playable cards yet.
type PlayerHandSummary struct {
	PlayerIndex int              `json:"playerIndex"`
	PlayerName  string           `json:"playerName"`
	Result      *handeval.Result `json:"evaluation"`
}

// EvaluatePlayer evaluates the player's hole cards against the board
func EvaluatePlayer(p *Player, board *Board) *PlayerHandSummary {
	var community []handeval.Card
	if board != nil {
		community = handeval.CardsOf(board.Cards())
	}

	return &PlayerHandSummary{
		PlayerIndex: p.Index,
		PlayerName:  p.Name,
		Result:      handeval.EvaluateHand(handeval.CardsOf(p.Hole), community),
	}
}

// HandSummaries evaluates every player, in seat order
func HandSummaries(players Players, board *Board) []*PlayerHandSummary {
	summaries := make([]*PlayerHandSummary, len(players))
	for i, p := range players {
		summaries[i] = EvaluatePlayer(p, board)
	}

	return summaries
}

// FindWinners returns every player whose hand is not beaten by another
// If no player has a hand yet, every player ties.
func FindWinners(summaries []*PlayerHandSummary) []*PlayerHandSummary {
	winners := make([]*PlayerHandSummary, 0, 1)
	var best *PlayerHandSummary

	for _, s := range summaries {
		if best == nil {
			best = s
			winners = append(winners, s)
			continue
		}

		switch handeval.CompareHands(s.Result, best.Result) {
		case 1:
			best = s
			winners = []*PlayerHandSummary{s}
		case 0:
			winners = append(winners, s)
		}
	}

	return winners
}

// WinnerIndexes returns the player index of each winner
func WinnerIndexes(summaries []*PlayerHandSummary) []int {
	winners := FindWinners(summaries)
	indexes := make([]int, len(winners))
	for i, w := range winners {
		indexes[i] = w.PlayerIndex
	}

	return indexes
}

type tier struct {
	result    *handeval.Result
	summaries []*PlayerHandSummary
}

// RankTiers groups the players by hand, best hand first
// Players within a tier keep their seat order.
func RankTiers(summaries []*PlayerHandSummary) [][]*PlayerHandSummary {
	tiers := make([]*tier, 0, len(summaries))

	for _, s := range summaries {
		var t *tier
		for _, existing := range tiers {
			if handeval.CompareHands(existing.result, s.Result) == 0 {
				t = existing
				break
			}
		}

		if t == nil {
			t = &tier{result: s.Result}
			tiers = append(tiers, t)
		}

		t.summaries = append(t.summaries, s)
	}

	sort.Stable(sort.Reverse(sortByStrength(tiers)))

	ranked := make([][]*PlayerHandSummary, len(tiers))
	for i, t := range tiers {
		ranked[i] = t.summaries
	}

	return ranked
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return handeval.CompareHands(s[i].result, s[j].result) < 0
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
