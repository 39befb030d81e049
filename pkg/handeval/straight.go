package handeval

import "pokerdemo/pkg/deck"

// isStraight expects ranks sorted high to low
func isStraight(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return false
		}
	}

	return ranks[0]-ranks[len(ranks)-1] == HandSize-1
}

// isWheel returns true for A-5-4-3-2, the only straight where the ace plays low
// ranks must be sorted high to low
func isWheel(ranks []int) bool {
	wheel := [HandSize]int{deck.Ace, 5, 4, 3, 2}
	if len(ranks) != len(wheel) {
		return false
	}

	for i, r := range wheel {
		if ranks[i] != r {
			return false
		}
	}

	return true
}
