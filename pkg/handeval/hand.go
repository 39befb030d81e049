package handeval

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownHandRank is returned when a hand rank name cannot be parsed
var ErrUnknownHandRank = errors.New("unknown hand rank")

// HandRank is a poker hand category, i.e., full house
// Higher values are stronger hands.
type HandRank int

// Constants for hand rank
const (
	HighCard HandRank = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// HandRanks lists every hand rank from weakest to strongest
var HandRanks = []HandRank{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the string representation of a hand
func (h HandRank) String() string {
	switch h {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// Key returns the machine-readable name, i.e., "full_house"
func (h HandRank) Key() string {
	return strings.ReplaceAll(strings.ToLower(h.String()), " ", "_")
}

// ParseHandRank parses a key ("full_house"), an upper-case constant ("FULL_HOUSE"), or a display name ("Full house")
func ParseHandRank(s string) (HandRank, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for _, h := range HandRanks {
		if h.Key() == key {
			return h, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHandRank, s)
}

// MarshalText encodes the hand rank as its key
func (h HandRank) MarshalText() ([]byte, error) {
	if h < HighCard || h > RoyalFlush {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandRank, int(h))
	}

	return []byte(h.Key()), nil
}

// UnmarshalText decodes a hand rank key
func (h *HandRank) UnmarshalText(text []byte) error {
	rank, err := ParseHandRank(string(text))
	if err != nil {
		return err
	}

	*h = rank
	return nil
}
