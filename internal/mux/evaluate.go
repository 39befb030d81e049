package mux

import (
	"errors"
	"fmt"
	"net/http"

	"pokerdemo/pkg/deck"
	"pokerdemo/pkg/handeval"
	"pokerdemo/pkg/table"
)

type postEvaluatePayload struct {
	Hole      []string `json:"hole"`
	Community []string `json:"community"`
}

type postEvaluateResponse struct {
	Evaluation *handeval.Result `json:"evaluation"`
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postEvaluatePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		hole, err := deck.ParseCards(pp.Hole)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hole: %w", err))
			return
		}

		community, err := deck.ParseCards(pp.Community)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("community: %w", err))
			return
		}

		writeJSON(w, http.StatusOK, postEvaluateResponse{
			Evaluation: handeval.EvaluateHand(handeval.CardsOf(hole), handeval.CardsOf(community)),
		})
	}
}

type showdownPlayer struct {
	Name string   `json:"name"`
	Hole []string `json:"hole"`
}

type postShowdownPayload struct {
	Community []string         `json:"community"`
	Players   []showdownPlayer `json:"players"`
}

type postShowdownResponse struct {
	Players []*table.PlayerHandSummary `json:"players"`
	Winners []int                      `json:"winners"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postShowdownPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if len(pp.Players) == 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("at least one player is required"))
			return
		}

		if len(pp.Community) > table.BoardSize {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("at most %d community cards", table.BoardSize))
			return
		}

		community, err := deck.ParseCards(pp.Community)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("community: %w", err))
			return
		}

		board := table.NewBoard()
		for i, c := range community {
			if err := board.SetCard(i, c); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		names := make([]string, len(pp.Players))
		for i, p := range pp.Players {
			names[i] = p.Name
		}

		players := table.NewPlayers(names)
		for i, p := range pp.Players {
			hole, err := deck.ParseCards(p.Hole)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("player %d: %w", i, err))
				return
			}

			players[i].Hole = hole
		}

		summaries := table.HandSummaries(players, board)
		writeJSON(w, http.StatusOK, postShowdownResponse{
			Players: summaries,
			Winners: table.WinnerIndexes(summaries),
		})
	}
}
