package table

import (
	"encoding/json"
	"fmt"

	"pokerdemo/pkg/deck"
)

// BoardSize is the number of community cards
const BoardSize = 5

// Drawer supplies cards, i.e., *deck.Deck
type Drawer interface {
	Draw() (*deck.Card, error)
}

// counter is implemented by drawers that know how many cards they have left
type counter interface {
	CanDraw(want int) bool
}

// Board holds the community cards
// Slots that have not been revealed hold a face-down card.
type Board struct {
	cards [BoardSize]*deck.Card
}

// NewBoard returns a board with every card face down
func NewBoard() *Board {
	b := &Board{}
	b.faceDown()

	return b
}

func (b *Board) faceDown() {
	for i := range b.cards {
		b.cards[i] = deck.FaceDown()
	}
}

// slots returns the board indexes a stage reveals
// The flop (stage 1) reveals three cards, the turn (2) and the river (3) one each.
func slots(stage int) []int {
	switch stage {
	case 1:
		return []int{0, 1, 2}
	case 2:
		return []int{3}
	case 3:
		return []int{4}
	}

	return nil
}

// Reveal draws the cards for a stage and places them on the board
// Stages other than 1-3 do nothing. The board only changes if every card for the stage was drawn;
// a drawer that reports CanDraw is checked first so no card is taken when there are too few.
func (b *Board) Reveal(stage int, draw Drawer) error {
	indexes := slots(stage)
	if c, ok := draw.(counter); ok && !c.CanDraw(len(indexes)) {
		return fmt.Errorf("could not reveal %d cards: %w", len(indexes), deck.ErrEndOfDeck)
	}

	cards := make([]*deck.Card, len(indexes))
	for n, i := range indexes {
		card, err := draw.Draw()
		if err != nil {
			return fmt.Errorf("could not reveal card %d: %w", i, err)
		}

		cards[n] = card
	}

	for n, i := range indexes {
		b.cards[i] = cards[n]
	}

	return nil
}

// Reset turns every card face down and returns the cards that had been revealed
func (b *Board) Reset() []*deck.Card {
	revealed := b.Revealed()
	b.faceDown()

	return revealed
}

// Revealed returns the playable cards on the board
func (b *Board) Revealed() []*deck.Card {
	return deck.Hand(b.cards[:]).Playable()
}

// Cards returns a copy of every slot, face-down cards included
func (b *Board) Cards() []*deck.Card {
	cards := make([]*deck.Card, BoardSize)
	copy(cards, b.cards[:])

	return cards
}

// Card returns the card at index i, or nil if i is out of range
func (b *Board) Card(i int) *deck.Card {
	if i < 0 || i >= BoardSize {
		return nil
	}

	return b.cards[i]
}

// SetCard replaces the card at index i
func (b *Board) SetCard(i int, card *deck.Card) error {
	if i < 0 || i >= BoardSize {
		return fmt.Errorf("board card %d: %w", i, ErrCardIndex)
	}

	b.cards[i] = card
	return nil
}

func (b *Board) String() string {
	return deck.CardsToString(b.cards[:])
}

// MarshalJSON encodes the board as a list of cards
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.cards[:])
}
