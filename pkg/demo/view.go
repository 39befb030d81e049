package demo

import (
	"pokerdemo/pkg/deck"
	"pokerdemo/pkg/handeval"
	"pokerdemo/pkg/table"
)

// View is a snapshot of a session, safe to encode and hand to a renderer
type View struct {
	ID              string       `json:"id"`
	Stage           Stage        `json:"stage"`
	ShowEvaluations bool         `json:"showEvaluations"`
	ShowWinners     bool         `json:"showWinners"`
	Board           []*deck.Card `json:"board"`
	Players         []PlayerView `json:"players"`
	Winners         []int        `json:"winners,omitempty"`
}

// PlayerView is a player within a View
// Evaluation is only set when the session shows evaluations.
type PlayerView struct {
	Index      int              `json:"index"`
	Name       string           `json:"name"`
	Cards      []*deck.Card     `json:"cards"`
	Evaluation *handeval.Result `json:"evaluation,omitempty"`
}

// IsWinner returns true if the player at index is in v.Winners
func (v *View) IsWinner(index int) bool {
	for _, w := range v.Winners {
		if w == index {
			return true
		}
	}

	return false
}

// View evaluates every player against the current board
// Hands are evaluated on every call; nothing is cached between calls.
func (s *Session) View() *View {
	v := &View{
		ID:              s.ID,
		Stage:           s.Stage,
		ShowEvaluations: s.ShowEvaluations,
		ShowWinners:     s.ShowWinners,
		Board:           s.Board.Cards(),
		Players:         make([]PlayerView, len(s.Players)),
	}

	var summaries []*table.PlayerHandSummary
	if s.ShowEvaluations || s.ShowWinners {
		summaries = table.HandSummaries(s.Players, s.Board)
	}

	for i, p := range s.Players {
		hole := make([]*deck.Card, len(p.Hole))
		copy(hole, p.Hole)

		v.Players[i] = PlayerView{
			Index: p.Index,
			Name:  p.Name,
			Cards: hole,
		}

		if s.ShowEvaluations {
			v.Players[i].Evaluation = summaries[i].Result
		}
	}

	if s.ShowWinners {
		v.Winners = table.WinnerIndexes(summaries)
	}

	return v
}
