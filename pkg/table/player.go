package table

import (
	"fmt"

	"pokerdemo/internal/util"
	"pokerdemo/pkg/deck"
)

// Player is a seat at the table
type Player struct {
	Index int          `json:"index"`
	Name  string       `json:"name"`
	Hole  []*deck.Card `json:"hole"`
}

// Card returns the hole card at index i, or nil if i is out of range
func (p *Player) Card(i int) *deck.Card {
	if i < 0 || i >= len(p.Hole) {
		return nil
	}

	return p.Hole[i]
}

// SetCard replaces the hole card at index i
func (p *Player) SetCard(i int, card *deck.Card) error {
	if i < 0 || i >= len(p.Hole) {
		return fmt.Errorf("player %d card %d: %w", p.Index, i, ErrCardIndex)
	}

	p.Hole[i] = card
	return nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, deck.CardsToString(p.Hole))
}

// Players is the list of players in seat order
type Players []*Player

// NewPlayers returns a player for each name
// An empty name is replaced with a random one.
func NewPlayers(names []string) Players {
	players := make(Players, len(names))
	for i, name := range names {
		if name == "" {
			name = util.GetRandomName()
		}

		players[i] = &Player{
			Index: i,
			Name:  name,
		}
	}

	return players
}

// Names returns the name of each player
func (p Players) Names() []string {
	names := make([]string, len(p))
	for i, player := range p {
		names[i] = player.Name
	}

	return names
}
