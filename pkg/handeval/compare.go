package handeval

// CompareHands compares two evaluation results
// Returns 1 if a wins, -1 if b wins, and 0 on a tie. A nil result (not enough cards) loses to any
// real hand and ties with another nil result.
func CompareHands(a, b *Result) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	return compare(a.Rank, a.Value, b.Rank, b.Value)
}

// isBetterHand is the check used while searching for the best subset
func isBetterHand(rank1 HandRank, value1 Value, rank2 HandRank, value2 Value) bool {
	return compare(rank1, value1, rank2, value2) > 0
}

// compare orders by hand rank first, then by tie-break value
func compare(rank1 HandRank, value1 Value, rank2 HandRank, value2 Value) int {
	if rank1 > rank2 {
		return 1
	} else if rank1 < rank2 {
		return -1
	}

	return CompareValues(value1, value2)
}
