package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists the four suits in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Valid returns true if the suit is one of the four standard suits
func (s Suit) Valid() bool {
	switch s {
	case Hearts, Clubs, Diamonds, Spades:
		return true
	}

	return false
}

// Blank identifies a card that is not a playing card
type Blank string

// blank constants
const (
	// Base is the face-down placeholder shown before a card is revealed
	Base  Blank = "base"
	Joker Blank = "joker"
)

// Card is an individual playing card
// A card with Blank set has no rank and no suit.
type Card struct {
	Rank  int   `json:"rank,omitempty"`
	Suit  Suit  `json:"suit,omitempty"`
	Blank Blank `json:"blank,omitempty"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// FaceDown returns a face-down placeholder card
func FaceDown() *Card {
	return &Card{Blank: Base}
}

// NewJoker returns a joker
func NewJoker() *Card {
	return &Card{Blank: Joker}
}

// HasRankAndSuit returns true if the card is a playable card
func (c *Card) HasRankAndSuit() bool {
	if c == nil || c.Blank != "" {
		return false
	}

	return c.Rank >= 2 && c.Rank <= Ace && c.Suit.Valid()
}

// GetRank returns the rank, or 0 for a non-playing card
func (c *Card) GetRank() int {
	if !c.HasRankAndSuit() {
		return 0
	}

	return c.Rank
}

// GetSuit returns the suit, or an empty suit for a non-playing card
func (c *Card) GetSuit() Suit {
	if !c.HasRankAndSuit() {
		return ""
	}

	return c.Suit
}

// IsBlank returns true for face-down placeholders and jokers
func (c *Card) IsBlank() bool {
	return c != nil && c.Blank != ""
}

// RankName returns the human-readable name of a rank (Jack, Queen, King, Ace, or the number)
func RankName(rank int) string {
	switch rank {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace, 1:
		return "Ace"
	default:
		return strconv.Itoa(rank)
	}
}

func (c *Card) String() string {
	if c.Blank != "" {
		return string(c.Blank)
	}

	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Name returns a long form of the card, i.e., "Ace of Spades"
func (c *Card) Name() string {
	if c.Blank != "" {
		return string(c.Blank)
	}

	suit := string(c.Suit)
	if suit != "" {
		suit = strings.ToUpper(suit[:1]) + suit[1:]
	}

	return fmt.Sprintf("%s of %s", RankName(c.Rank), suit)
}

// Equal returns true if the cards are equal (matches suit and rank, or the same kind of blank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank && c.Blank == card.Blank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs].
// "x" is a face-down card and "joker" is a joker.
func ParseCard(s string) (*Card, error) {
	switch strings.ToLower(s) {
	case "x", string(Base):
		return FaceDown(), nil
	case string(Joker):
		return NewJoker(), nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// ParseCards parses a slice of card strings
func ParseCards(values []string) ([]*Card, error) {
	cards := make([]*Card, len(values))
	for i, s := range values {
		card, err := ParseCard(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but panics if the card cannot be parsed
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString will return a slice of cards from a string in the format of 2c,3h,4s,...
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	switch card.Blank {
	case Base:
		return "x"
	case Joker:
		return string(Joker)
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
