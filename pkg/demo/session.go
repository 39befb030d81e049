package demo

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"pokerdemo/internal/util"
	"pokerdemo/pkg/deck"
	"pokerdemo/pkg/table"
)

// DefaultHoleCards is the number of hole cards dealt when Options.HoleCards is zero
const DefaultHoleCards = 2

// Options configure a new session
type Options struct {
	PlayerNames []string
	HoleCards   int

	// Seed is the shuffle seed of the first hand; each new hand adds one
	// If zero, every hand is shuffled with a random seed.
	Seed int64
}

// Session is a single demo table: players, a board, and what the viewer has chosen to see
type Session struct {
	ID              string
	Stage           Stage
	ShowEvaluations bool
	ShowWinners     bool
	Board           *table.Board
	Players         table.Players

	options Options
	hand    int64
	deck    *deck.Deck
	logger  logrus.FieldLogger

	clients     map[*Client]bool
	clientsLock sync.RWMutex
}

// NewSession validates the options, shuffles, and deals the first hand
func NewSession(logger logrus.FieldLogger, opts Options) (*Session, error) {
	if len(opts.PlayerNames) == 0 {
		return nil, ErrNoPlayers
	}

	if opts.HoleCards == 0 {
		opts.HoleCards = DefaultHoleCards
	}

	if opts.HoleCards < 1 {
		return nil, ErrHoleCards
	}

	if need := len(opts.PlayerNames)*opts.HoleCards + table.BoardSize; need > len(deck.New().Cards) {
		return nil, fmt.Errorf("%w: need %d cards", ErrNotEnoughCards, need)
	}

	if opts.Seed < 0 {
		return nil, fmt.Errorf("seed cannot be negative: %d", opts.Seed)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := util.NewID()
	s := &Session{
		ID:      id,
		Board:   table.NewBoard(),
		Players: table.NewPlayers(opts.PlayerNames),
		options: opts,
		deck:    deck.New(),
		logger:  logger.WithField("session", id),
		clients: make(map[*Client]bool),
	}

	if err := s.deal(); err != nil {
		return nil, err
	}

	return s, nil
}

// deal shuffles a fresh deck and gives every player new hole cards
func (s *Session) deal() error {
	var seed int64
	if s.options.Seed > 0 {
		seed = s.options.Seed + s.hand
	}

	s.deck.Shuffle(seed)
	s.hand++
	s.Board = table.NewBoard()
	s.Stage = StagePreFlop

	for _, p := range s.Players {
		p.Hole = make([]*deck.Card, s.options.HoleCards)
		for i := range p.Hole {
			card, err := s.deck.Draw()
			if err != nil {
				return err
			}

			p.Hole[i] = card
		}
	}

	s.logger.WithFields(logrus.Fields{
		"hand": s.hand,
		"seed": s.deck.GetSeed(),
	}).Debug("dealt new hand")

	return nil
}

// Seed returns the seed the current hand was shuffled with
func (s *Session) Seed() int64 {
	return s.deck.GetSeed()
}

// CardsLeft returns the number of undealt cards
func (s *Session) CardsLeft() int {
	return s.deck.CardsLeft()
}

// Apply performs an action
// changed is false when the action had nothing to do, i.e., "next" on the river.
func (s *Session) Apply(action Action) (changed bool, err error) {
	log := s.logger.WithField("action", action)

	switch action {
	case ActionNext:
		if s.Stage >= StageRiver {
			return false, nil
		}

		if err := s.Board.Reveal(int(s.Stage)+1, s.deck); err != nil {
			return false, err
		}

		s.Stage++
	case ActionReset:
		if s.Stage == StagePreFlop {
			return false, nil
		}

		s.deck.ShuffleDiscards(s.Board.Reset())
		s.Stage = StagePreFlop
	case ActionToggleEvaluations:
		s.ShowEvaluations = !s.ShowEvaluations
	case ActionToggleWinners:
		s.ShowWinners = !s.ShowWinners
	case ActionNewHand:
		if err := s.deal(); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	log.WithField("stage", s.Stage.String()).Debug("applied action")
	s.broadcast()

	return true, nil
}

// AddClient subscribes a client to view updates
func (s *Session) AddClient(c *Client) {
	s.clientsLock.Lock()
	s.clients[c] = true
	s.clientsLock.Unlock()

	c.Send(s.View())
}

// RemoveClient unsubscribes a client
// Returns true if there are no clients left.
func (s *Session) RemoveClient(c *Client) bool {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()

	delete(s.clients, c)
	return len(s.clients) == 0
}

// Clients returns the subscribed clients (at the time)
func (s *Session) Clients() []*Client {
	s.clientsLock.RLock()
	defer s.clientsLock.RUnlock()

	clients := make([]*Client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}

	return clients
}

func (s *Session) broadcast() {
	clients := s.Clients()
	if len(clients) == 0 {
		return
	}

	view := s.View()
	for _, c := range clients {
		if !c.Send(view) {
			s.logger.WithField("client", c.String()).Warn("client send buffer is full, dropping view")
		}
	}
}
