package deck

import (
	"sort"
)

// Hand represents a collection of cards
type Hand []*Card

// sorts by rank (high first), then suit
func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Rank != h[j].Rank {
		return h[i].Rank > h[j].Rank
	}

	return h[i].Suit < h[j].Suit
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c != nil && c.Equal(card) {
			return true
		}
	}

	return false
}

// Playable returns only the cards that have both a rank and a suit
func (h Hand) Playable() Hand {
	playable := make(Hand, 0, len(h))
	for _, c := range h {
		if c.HasRankAndSuit() {
			playable = append(playable, c)
		}
	}

	return playable
}

// Sorted returns a copy of the hand ordered by rank, highest first
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Stable(h2)
	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
