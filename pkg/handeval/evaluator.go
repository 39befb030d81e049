package handeval

import (
	"fmt"
	"sort"
	"strings"

	"pokerdemo/pkg/deck"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// Card is the view of a playing card the evaluator needs
// Non-playing cards (face-down placeholders, jokers) report false from HasRankAndSuit.
type Card interface {
	HasRankAndSuit() bool
	GetRank() int
	GetSuit() deck.Suit
}

// CardsOf converts a slice of concrete cards, i.e., []*deck.Card, into evaluator cards
func CardsOf[C Card](cards []C) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c
	}

	return out
}

// Result is the best five-card hand found in a pool of cards
type Result struct {
	Rank        HandRank `json:"rank"`
	Value       Value    `json:"value"`
	Cards       []Card   `json:"cards"`
	Description string   `json:"description"`
}

func (r *Result) String() string {
	if r == nil {
		return "no hand"
	}

	cards := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		cards[i] = fmt.Sprint(c)
	}

	return fmt.Sprintf("%s [%s]", r.Description, strings.Join(cards, " "))
}

// EvaluateHand returns the best five-card hand that can be made from the hole and community cards
// Cards without a rank and suit are ignored. If fewer than five playable cards remain, nil is returned.
// When two subsets score the same, the first one found is kept.
func EvaluateHand(hole, community []Card) *Result {
	pool := make([]Card, 0, len(hole)+len(community))
	for _, cards := range [][]Card{hole, community} {
		for _, c := range cards {
			if c != nil && c.HasRankAndSuit() {
				pool = append(pool, c)
			}
		}
	}

	if len(pool) < HandSize {
		return nil
	}

	var best *Result
	five := make([]Card, HandSize)

	forEachCombination(len(pool), HandSize, func(indexes []int) {
		for i, idx := range indexes {
			five[i] = pool[idx]
		}

		rank, value, description := evaluateFiveCards(five)
		if best != nil && !isBetterHand(rank, value, best.Rank, best.Value) {
			return
		}

		cards := make([]Card, HandSize)
		copy(cards, five)

		best = &Result{
			Rank:        rank,
			Value:       value,
			Cards:       cards,
			Description: description,
		}
	})

	return best
}

// forEachCombination calls fn with every k-sized subset of the indexes [0, n) in lexicographic order
// The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func(indexes []int)) {
	if k > n || k <= 0 {
		return
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		// find the rightmost index that can still be incremented
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}

// evaluateFiveCards classifies exactly five playable cards
// Calling it with any other number of cards is a programming error.
func evaluateFiveCards(cards []Card) (HandRank, Value, string) {
	if len(cards) != HandSize {
		panic(fmt.Sprintf("handeval: expected %d cards, got %d", HandSize, len(cards)))
	}

	ranks := make([]int, HandSize)
	for i, card := range cards {
		ranks[i] = card.GetRank()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := isFlush(cards)
	straight := isStraight(ranks)

	// A-2-3-4-5, the ace plays low
	if isWheel(ranks) {
		straight = true
		ranks = []int{5, 4, 3, 2, 1}
	}

	groups := groupRanks(ranks)

	switch {
	case straight && flush:
		if ranks[0] == deck.Ace && ranks[1] == deck.King {
			return RoyalFlush, Int(ranks[0]), "Royal Flush"
		}

		return StraightFlush, Int(ranks[0]), fmt.Sprintf("Straight Flush, %s high", deck.RankName(ranks[0]))

	case groups.shape(4, 1):
		quads, kicker := groups.ranks[0], groups.ranks[1]
		return FourOfAKind, Ints(quads, kicker), fmt.Sprintf("Four %s", plural(quads))

	case groups.shape(3, 2):
		trips, pair := groups.ranks[0], groups.ranks[1]
		return FullHouse, Ints(trips, pair), fmt.Sprintf("Full House, %s over %s", plural(trips), plural(pair))

	case flush:
		return Flush, Ints(ranks...), fmt.Sprintf("Flush, %s high", deck.RankName(ranks[0]))

	case straight:
		return Straight, Int(ranks[0]), fmt.Sprintf("Straight, %s high", deck.RankName(ranks[0]))

	case groups.shape(3, 1, 1):
		trips := groups.ranks[0]
		return ThreeOfAKind, Tuple(Int(trips), Ints(groups.ranks[1:]...)), fmt.Sprintf("Three %s", plural(trips))

	case groups.shape(2, 2, 1):
		high, low, kicker := groups.ranks[0], groups.ranks[1], groups.ranks[2]
		return TwoPair, Tuple(Ints(high, low), Int(kicker)), fmt.Sprintf("Two Pair, %s and %s", plural(high), plural(low))

	case groups.shape(2, 1, 1, 1):
		pair := groups.ranks[0]
		return Pair, Tuple(Int(pair), Ints(groups.ranks[1:]...)), fmt.Sprintf("Pair of %s", plural(pair))

	default:
		return HighCard, Ints(ranks...), fmt.Sprintf("High Card, %s", deck.RankName(ranks[0]))
	}
}

func isFlush(cards []Card) bool {
	suit := cards[0].GetSuit()
	for _, card := range cards[1:] {
		if card.GetSuit() != suit {
			return false
		}
	}

	return true
}

func plural(rank int) string {
	return deck.RankName(rank) + "s"
}

// rankGroups is the rank-frequency breakdown of a hand
// ranks holds each distinct rank once, ordered by (count, rank) descending; counts is aligned with it.
type rankGroups struct {
	ranks  []int
	counts []int
}

func groupRanks(ranks []int) rankGroups {
	frequency := make(map[int]int, len(ranks))
	for _, r := range ranks {
		frequency[r]++
	}

	unique := make([]int, 0, len(frequency))
	for r := range frequency {
		unique = append(unique, r)
	}

	// map order is random; the explicit sort is what makes ties between equal-sized groups deterministic
	sort.Slice(unique, func(i, j int) bool {
		ci, cj := frequency[unique[i]], frequency[unique[j]]
		if ci != cj {
			return ci > cj
		}

		return unique[i] > unique[j]
	})

	counts := make([]int, len(unique))
	for i, r := range unique {
		counts[i] = frequency[r]
	}

	return rankGroups{
		ranks:  unique,
		counts: counts,
	}
}

// shape returns true if the group sizes match exactly, i.e., shape(3, 2) for a full house
func (g rankGroups) shape(counts ...int) bool {
	if len(counts) != len(g.counts) {
		return false
	}

	for i, c := range counts {
		if g.counts[i] != c {
			return false
		}
	}

	return true
}
